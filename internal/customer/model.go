package customer

import "time"

type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceOffline Presence = "offline"
)

type Customer struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	DistanceKm          float64  `json:"distance_km"`
	LastSeen            string   `json:"last_seen"`
	TotalOrders         int      `json:"total_orders"`
	PreferredCategories []string `json:"preferred_categories"`
	Status              Presence `json:"status"`
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// Request is a customer asking the merchant for a discount.
type Request struct {
	ID                string        `json:"id"`
	CustomerID        string        `json:"customer_id"`
	CustomerName      string        `json:"customer_name"`
	Message           string        `json:"message"`
	RequestedDiscount float64       `json:"requested_discount"`
	Category          string        `json:"category"`
	CreatedAt         time.Time     `json:"created_at"`
	Status            RequestStatus `json:"status"`
}

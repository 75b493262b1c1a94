package merchant

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusPending   Status = "pending"
	StatusSuspended Status = "suspended"
)

type Merchant struct {
	ID                 string    `json:"id"`
	StoreName          string    `json:"store_name"`
	OwnerName          string    `json:"owner_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	Status             Status    `json:"status"`
	JoinDate           time.Time `json:"join_date"`
	TotalRevenue       float64   `json:"total_revenue"`
	TotalOrders        int       `json:"total_orders"`
	Rating             float64   `json:"rating"`
	ExclusivityEndDate time.Time `json:"exclusivity_end_date"`
}

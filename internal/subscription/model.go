package subscription

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Tier is a subscription level with a strict capability order.
type Tier string

const (
	TierBasic      Tier = "basic"
	TierPremium    Tier = "premium"
	TierEnterprise Tier = "enterprise"
)

var tierRank = map[Tier]int{
	TierBasic:      1,
	TierPremium:    2,
	TierEnterprise: 3,
}

// Rank returns the capability rank of a tier. Unknown tiers rank 0 so a
// corrupted plan id degrades to "no access" instead of failing the caller.
func Rank(t Tier) int {
	return tierRank[t]
}

type Plan struct {
	ID             Tier     `json:"id"`
	Name           string   `json:"name"`
	Price          int      `json:"price"` // INR for the full duration
	DurationMonths int      `json:"duration_months"`
	Features       []string `json:"features"`
	Popular        bool     `json:"popular,omitempty"`
	Savings        string   `json:"savings,omitempty"`
}

type Subscription struct {
	PlanID        Tier      `json:"plan_id"`
	PlanName      string    `json:"plan_name"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	Status        Status    `json:"status"`
	AutoRenew     bool      `json:"auto_renew"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id"`
}

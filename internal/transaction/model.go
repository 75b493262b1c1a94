package transaction

import "time"

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

type PayoutStatus string

const (
	PayoutPaid       PayoutStatus = "paid"
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
)

type Transaction struct {
	ID            string       `json:"id"`
	CustomerName  string       `json:"customer_name"`
	CustomerUPI   string       `json:"customer_upi"`
	Amount        float64      `json:"amount"`
	Products      []string     `json:"products"`
	PaymentMethod string       `json:"payment_method"`
	Status        Status       `json:"status"`
	PayoutStatus  PayoutStatus `json:"payout_status"`
	Timestamp     time.Time    `json:"timestamp"`
	TransactionID string       `json:"transaction_id"`
}

// Summary aggregates the filtered records the dashboard shows on top of the
// table.
type Summary struct {
	TotalAmount    float64 `json:"total_amount"`
	CompletedCount int     `json:"completed_count"`
	TotalCount     int     `json:"total_count"`
}

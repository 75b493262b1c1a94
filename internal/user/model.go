package user

import "time"

type Role string

const (
	RoleMerchant Role = "merchant"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Password   string    `json:"-"` // bcrypt hash, not checked by the mock login
	Role       Role      `json:"role"`
	MerchantID string    `json:"merchant_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

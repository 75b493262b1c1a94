package report

import "time"

type Type string

const (
	TypeInappropriateContent Type = "inappropriate_content"
	TypeFakeProduct          Type = "fake_product"
	TypePoorService          Type = "poor_service"
	TypeFraud                Type = "fraud"
	TypeOther                Type = "other"
)

type TargetType string

const (
	TargetMerchant TargetType = "merchant"
	TargetProduct  TargetType = "product"
)

type Status string

const (
	StatusPending       Status = "pending"
	StatusInvestigating Status = "investigating"
	StatusResolved      Status = "resolved"
	StatusDismissed     Status = "dismissed"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type Report struct {
	ID            string     `json:"id"`
	ReporterName  string     `json:"reporter_name"`
	ReporterEmail string     `json:"reporter_email"`
	Type          Type       `json:"report_type"`
	TargetType    TargetType `json:"target_type"`
	TargetName    string     `json:"target_name"`
	TargetID      string     `json:"target_id"`
	Description   string     `json:"description"`
	Status        Status     `json:"status"`
	Priority      Priority   `json:"priority"`
	AdminNotes    string     `json:"admin_notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

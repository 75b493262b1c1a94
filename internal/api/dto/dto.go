package dto

import "github.com/go-playground/validator/v10"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=merchant admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type SubscribeRequest struct {
	PlanID  string `json:"plan_id" validate:"required"`
	Gateway string `json:"gateway" validate:"required"`
}

type ProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Brand    string  `json:"brand" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Discount float64 `json:"discount" validate:"gte=0,lte=100"`
	Color    string  `json:"color"`
	Stock    int     `json:"stock" validate:"gte=0"`
	Status   string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

type OfferRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	DiscountType  string   `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue float64  `json:"discount_value" validate:"required,gt=0"`
	StartDate     string   `json:"start_date" validate:"required"`
	EndDate       string   `json:"end_date" validate:"required"`
	MaxUsage      int      `json:"max_usage" validate:"gte=0"`
	MinOrderValue float64  `json:"min_order_value" validate:"gte=0"`
	Categories    []string `json:"categories"`
	Status        string   `json:"status" validate:"omitempty,oneof=active inactive expired"`
}

type RequestDecision struct {
	Action string `json:"action" validate:"required,oneof=accepted rejected"`
}

type NotifyCustomersRequest struct {
	Message string `json:"message" validate:"required"`
}

type StoreUpdateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	Phone       string  `json:"phone" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	OpenTime    string  `json:"open_time"`
	CloseTime   string  `json:"close_time"`
	IsOpen      bool    `json:"is_open"`
	Description string  `json:"description"`
}

type MerchantStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

type MerchantApprovalRequest struct {
	Approved bool `json:"approved"`
}

type ReportStatusRequest struct {
	Status     string `json:"status" validate:"required,oneof=pending investigating resolved dismissed"`
	AdminNotes string `json:"admin_notes"`
}

var Validate = validator.New()

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"merchantapp/internal/api/dto"
	"merchantapp/internal/payment"
	"merchantapp/internal/subscription"
	"merchantapp/internal/subscription/service"
	"merchantapp/pkg/middleware"
)

type Handler struct {
	SubscriptionService *service.Service
}

func NewSubscriptionHandler(ss *service.Service) *Handler {
	return &Handler{SubscriptionService: ss}
}

// GetCurrent returns the merchant's subscription together with the derived
// activity fields the dashboard renders.
func (h *Handler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())

	sub, err := h.SubscriptionService.Current(r.Context(), merchantID)
	if err != nil {
		http.Error(w, "failed to load subscription", http.StatusInternalServerError)
		return
	}

	active, err := h.SubscriptionService.IsActive(r.Context(), merchantID)
	if err != nil {
		http.Error(w, "failed to load subscription", http.StatusInternalServerError)
		return
	}
	days, err := h.SubscriptionService.DaysUntilExpiry(r.Context(), merchantID)
	if err != nil {
		http.Error(w, "failed to load subscription", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"subscription":      sub,
		"is_active":         active,
		"days_until_expiry": days,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) GetPlans(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"plans":    subscription.Plans(),
		"gateways": payment.Gateways(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())

	var req dto.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sub, err := h.SubscriptionService.Subscribe(r.Context(), merchantID, subscription.Tier(req.PlanID), req.Gateway)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownPlan):
			http.Error(w, "unknown plan", http.StatusBadRequest)
		case errors.Is(err, payment.ErrPaymentRejected):
			http.Error(w, "payment failed, please try again", http.StatusPaymentRequired)
		default:
			http.Error(w, "failed to subscribe", http.StatusInternalServerError)
		}
		return
	}

	resp := map[string]interface{}{
		"subscription": sub,
		"message":      "Successfully subscribed to " + sub.PlanName + " plan",
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) CancelAutoRenew(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())

	sub, err := h.SubscriptionService.CancelAutoRenew(r.Context(), merchantID)
	if err != nil {
		if errors.Is(err, service.ErrNoSubscription) {
			http.Error(w, "no subscription to cancel", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to cancel auto-renewal", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"subscription": sub,
		"message":      "Auto-renewal cancelled. Your subscription will expire on the end date.",
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

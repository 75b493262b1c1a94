package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"merchantapp/internal/api/dto"
	"merchantapp/internal/customer"
	"merchantapp/internal/customer/repository"
	"merchantapp/internal/customer/service"
	"merchantapp/pkg/middleware"
)

type Handler struct {
	CustomerService *service.Service
}

func NewCustomerHandler(cs *service.Service) *Handler {
	return &Handler{CustomerService: cs}
}

func (h *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	customers, err := h.CustomerService.Nearby(r.Context())
	if err != nil {
		http.Error(w, "failed to list customers", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"customers": customers})
}

func (h *Handler) Requests(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())

	requests, err := h.CustomerService.Requests(r.Context(), merchantID)
	if err != nil {
		http.Error(w, "failed to list requests", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"requests": requests})
}

func (h *Handler) Decide(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())
	requestID := chi.URLParam(r, "id")

	var req dto.RequestDecision
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.CustomerService.Decide(r.Context(), merchantID, requestID, customer.RequestStatus(req.Action))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			http.Error(w, "request not found", http.StatusNotFound)
		case errors.Is(err, service.ErrAlreadyDecided):
			http.Error(w, "request already decided", http.StatusConflict)
		default:
			http.Error(w, "failed to update request", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())

	var req dto.NotifyCustomersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reached, err := h.CustomerService.Notify(r.Context(), merchantID, req.Message)
	if err != nil {
		http.Error(w, "failed to send notification", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"message": "Notification sent to nearby customers",
		"reached": reached,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

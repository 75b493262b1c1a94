package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"merchantapp/internal/api/dto"
	"merchantapp/internal/merchant"
	"merchantapp/internal/merchant/repository"
	"merchantapp/internal/merchant/service"
)

type Handler struct {
	MerchantService *service.Service
}

func NewMerchantHandler(ms *service.Service) *Handler {
	return &Handler{MerchantService: ms}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f := service.Filter{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
		City:   r.URL.Query().Get("city"),
	}

	merchants, err := h.MerchantService.List(r.Context(), f)
	if err != nil {
		http.Error(w, "failed to list merchants", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"merchants": merchants})
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	merchantID := chi.URLParam(r, "id")

	var req dto.MerchantApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	m, err := h.MerchantService.Approve(r.Context(), merchantID, req.Approved)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			http.Error(w, "merchant not found", http.StatusNotFound)
		case errors.Is(err, service.ErrNotPending):
			http.Error(w, "merchant is not awaiting approval", http.StatusConflict)
		default:
			http.Error(w, "failed to update merchant", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	merchantID := chi.URLParam(r, "id")

	var req dto.MerchantStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.MerchantService.SetStatus(r.Context(), merchantID, merchant.Status(req.Status))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "merchant not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update merchant", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

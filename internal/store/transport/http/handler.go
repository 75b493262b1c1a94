package http

import (
	"context"
	"encoding/json"
	"net/http"

	"merchantapp/internal/api/dto"
	"merchantapp/internal/store"
	"merchantapp/pkg/middleware"
)

type StoreRepository interface {
	Get(ctx context.Context, merchantID string) (*store.Store, error)
	Update(ctx context.Context, merchantID string, s *store.Store) error
}

// Handler talks straight to the repository, the store profile has no
// business rules beyond validation.
type Handler struct {
	Repo StoreRepository
}

func NewStoreHandler(repo StoreRepository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())

	s, err := h.Repo.Get(r.Context(), merchantID)
	if err != nil {
		http.Error(w, "failed to load store", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())

	var req dto.StoreUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s := &store.Store{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		IsOpen:      req.IsOpen,
		Description: req.Description,
	}

	if err := h.Repo.Update(r.Context(), merchantID, s); err != nil {
		http.Error(w, "failed to update store", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"store":   s,
		"message": "Store information updated successfully",
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

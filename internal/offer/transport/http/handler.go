package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"merchantapp/internal/api/dto"
	"merchantapp/internal/offer"
	"merchantapp/internal/offer/repository"
	"merchantapp/internal/offer/service"
	"merchantapp/pkg/middleware"
)

type Handler struct {
	OfferService *service.Service
}

func NewOfferHandler(os *service.Service) *Handler {
	return &Handler{OfferService: os}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())

	offers, err := h.OfferService.List(r.Context(), merchantID)
	if err != nil {
		http.Error(w, "failed to list offers", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"offers": offers})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())

	o, ok := decodeOffer(w, r)
	if !ok {
		return
	}

	if err := h.OfferService.Create(r.Context(), merchantID, o); err != nil {
		writeOfferError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())
	offerID := chi.URLParam(r, "id")

	o, ok := decodeOffer(w, r)
	if !ok {
		return
	}

	o.ID = offerID
	if err := h.OfferService.Update(r.Context(), merchantID, o); err != nil {
		writeOfferError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())
	offerID := chi.URLParam(r, "id")

	if err := h.OfferService.Delete(r.Context(), merchantID, offerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "offer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete offer", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeOffer(w http.ResponseWriter, r *http.Request) (*offer.Offer, bool) {
	var req dto.OfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return nil, false
	}
	if err := dto.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		http.Error(w, "invalid start_date, expected YYYY-MM-DD", http.StatusBadRequest)
		return nil, false
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		http.Error(w, "invalid end_date, expected YYYY-MM-DD", http.StatusBadRequest)
		return nil, false
	}

	return &offer.Offer{
		Title:         req.Title,
		Description:   req.Description,
		DiscountType:  offer.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		StartDate:     start,
		EndDate:       end,
		MaxUsage:      req.MaxUsage,
		MinOrderValue: req.MinOrderValue,
		Categories:    req.Categories,
		Status:        offer.Status(req.Status),
	}, true
}

func writeOfferError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPremiumRequired):
		http.Error(w, "custom offers require a Premium subscription", http.StatusForbidden)
	case errors.Is(err, service.ErrInvalidDates):
		http.Error(w, "end date must be after start date", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, "offer not found", http.StatusNotFound)
	default:
		http.Error(w, "failed to save offer", http.StatusInternalServerError)
	}
}

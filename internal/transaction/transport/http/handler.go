package http

import (
	"encoding/json"
	"net/http"

	"merchantapp/internal/transaction/service"
	"merchantapp/pkg/middleware"
)

type Handler struct {
	TransactionService *service.Service
}

func NewTransactionHandler(ts *service.Service) *Handler {
	return &Handler{TransactionService: ts}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())

	f := service.Filter{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
		Payout: r.URL.Query().Get("payout"),
	}

	items, summary, err := h.TransactionService.List(r.Context(), merchantID, f)
	if err != nil {
		http.Error(w, "failed to list transactions", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"transactions": items,
		"summary":      summary,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

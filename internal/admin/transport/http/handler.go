package http

import (
	"encoding/json"
	"net/http"

	"merchantapp/internal/admin/service"
)

type Handler struct {
	AdminService *service.Service
}

func NewAdminHandler(as *service.Service) *Handler {
	return &Handler{AdminService: as}
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.AdminService.Summary(r.Context())
	if err != nil {
		http.Error(w, "failed to build summary", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

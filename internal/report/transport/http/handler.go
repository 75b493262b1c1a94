package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"merchantapp/internal/api/dto"
	"merchantapp/internal/report"
	"merchantapp/internal/report/repository"
	"merchantapp/internal/report/service"
)

type Handler struct {
	ReportService *service.Service
}

func NewReportHandler(rs *service.Service) *Handler {
	return &Handler{ReportService: rs}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f := service.Filter{
		Search:   r.URL.Query().Get("search"),
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
		Type:     r.URL.Query().Get("type"),
	}

	reports, err := h.ReportService.List(r.Context(), f)
	if err != nil {
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"reports": reports})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	rep, err := h.ReportService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "id")

	var req dto.ReportStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rep, err := h.ReportService.UpdateStatus(r.Context(), reportID, report.Status(req.Status), req.AdminNotes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

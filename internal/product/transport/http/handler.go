package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"merchantapp/internal/api/dto"
	"merchantapp/internal/product"
	"merchantapp/internal/product/repository"
	"merchantapp/internal/product/service"
	"merchantapp/pkg/middleware"
)

type Handler struct {
	ProductService *service.Service
}

func NewProductHandler(ps *service.Service) *Handler {
	return &Handler{ProductService: ps}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	items, err := h.ProductService.List(r.Context(), merchantID, search, category)
	if err != nil {
		http.Error(w, "failed to list products", http.StatusInternalServerError)
		return
	}

	limit, err := h.ProductService.ProductLimit(r.Context(), merchantID)
	if err != nil {
		http.Error(w, "failed to list products", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"products":   items,
		"limit":      limit,
		"categories": product.Categories,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())

	req, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	p := productFromRequest(req)
	if err := h.ProductService.Create(r.Context(), merchantID, p); err != nil {
		if errors.Is(err, service.ErrProductLimit) {
			http.Error(w, "product limit reached, upgrade your plan to add more products", http.StatusForbidden)
			return
		}
		http.Error(w, "failed to create product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())
	productID := chi.URLParam(r, "id")

	req, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	p := productFromRequest(req)
	p.ID = productID
	if err := h.ProductService.Update(r.Context(), merchantID, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.MerchantIDFromContext(r.Context())
	productID := chi.URLParam(r, "id")

	if err := h.ProductService.Delete(r.Context(), merchantID, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete product", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeProduct(w http.ResponseWriter, r *http.Request) (*dto.ProductRequest, bool) {
	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return nil, false
	}
	if err := dto.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func productFromRequest(req *dto.ProductRequest) *product.Product {
	status := product.Status(req.Status)
	if status == "" {
		status = product.StatusActive
	}
	return &product.Product{
		Name:     req.Name,
		Brand:    req.Brand,
		Category: req.Category,
		Price:    req.Price,
		Discount: req.Discount,
		Color:    req.Color,
		Stock:    req.Stock,
		Status:   status,
	}
}

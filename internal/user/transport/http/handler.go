package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"merchantapp/internal/api/dto"
	"merchantapp/internal/token"
	"merchantapp/internal/user"
	"merchantapp/internal/user/service"
)

type TokenStore interface {
	Save(ctx context.Context, t *token.Token) error
	GetByToken(ctx context.Context, tokenStr string) (*token.Token, error)
	DeleteByToken(ctx context.Context, tokenStr string) error
}

type Handler struct {
	UserService *service.UserService
	JWT         *service.JWTManager
	Tokens      TokenStore
}

func NewHandler(us *service.UserService, jwtSecret string, tokens TokenStore) *Handler {
	return &Handler{
		UserService: us,
		JWT:         service.NewJWTManager(jwtSecret),
		Tokens:      tokens,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	role := user.Role(req.Role)
	if role == "" {
		role = service.RoleFromEmail(req.Email)
	}

	u, err := h.UserService.Register(r.Context(), req.Email, req.Password, role)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := map[string]interface{}{
		"id":          u.ID,
		"email":       u.Email,
		"role":        u.Role,
		"merchant_id": u.MerchantID,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}

	accessToken, err := h.JWT.Generate(u)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	refreshToken, err := token.NewRefreshToken(u.ID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}
	if err := h.Tokens.Save(r.Context(), refreshToken); err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"id":            u.ID,
		"email":         u.Email,
		"role":          u.Role,
		"merchant_id":   u.MerchantID,
		"token":         accessToken,
		"refresh_token": refreshToken.Token,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := h.Tokens.GetByToken(r.Context(), req.RefreshToken)
	if err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = h.Tokens.DeleteByToken(r.Context(), req.RefreshToken)
		http.Error(w, "refresh token expired", http.StatusUnauthorized)
		return
	}

	u, err := h.UserService.GetByID(r.Context(), stored.UserID)
	if err != nil {
		http.Error(w, "user not found", http.StatusUnauthorized)
		return
	}

	accessToken, err := h.JWT.Generate(u)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	// rotate the refresh token on every use
	_ = h.Tokens.DeleteByToken(r.Context(), req.RefreshToken)
	next, err := token.NewRefreshToken(u.ID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}
	if err := h.Tokens.Save(r.Context(), next); err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"token":         accessToken,
		"refresh_token": next.Token,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// ErrorResponse is the standard shape for validation errors.
type ErrorResponse struct {
	Error string      `json:"error"`
	Field string      `json:"field,omitempty"`
	Value interface{} `json:"value,omitempty"`
}

// ValidateRequest rejects malformed requests before they reach a handler.
func ValidateRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			contentType := r.Header.Get("Content-Type")
			if contentType != "" && !strings.Contains(contentType, "application/json") {
				errResp := ErrorResponse{Error: "Invalid Content-Type, expected application/json"}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(errResp)
				return
			}

		}

		const maxSize = 10 << 20 // 10 MB
		r.Body = http.MaxBytesReader(w, r.Body, maxSize)

		next.ServeHTTP(w, r)
	})
}

// HandleValidationError writes a validation failure response.
func HandleValidationError(w http.ResponseWriter, err error, field, value string) {
	log.Printf("Validation error: %v", err)

	resp := ErrorResponse{
		Error: err.Error(),
		Field: field,
		Value: value,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(resp)
}

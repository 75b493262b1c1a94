package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"merchantapp/internal/user"
)

type JWTManager struct {
	SecretKey string
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{
		SecretKey: secret,
	}
}

func (j *JWTManager) Generate(u *user.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     u.ID,
		"email":       u.Email,
		"role":        string(u.Role),
		"merchant_id": u.MerchantID,
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
		"iat":         time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(j.SecretKey))
}

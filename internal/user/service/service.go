package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"merchantapp/internal/user"
	"merchantapp/pkg/hash"
)

var ErrUserExists = errors.New("user already exists")

type UserRepository interface {
	Create(context.Context, *user.User) error
	GetByEmail(context.Context, string) (*user.User, error)
	GetByID(context.Context, int64) (*user.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// RoleFromEmail is the demo role inference: any address containing "admin"
// gets the admin dashboard, everyone else is a merchant.
func RoleFromEmail(email string) user.Role {
	if strings.Contains(email, "admin") {
		return user.RoleAdmin
	}
	return user.RoleMerchant
}

func (s *UserService) Register(ctx context.Context, email, password string, role user.Role) (*user.User, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	}

	hashed, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	if role == user.RoleMerchant {
		u.MerchantID = newMerchantID()
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Login accepts any credentials. The password is never verified, the role
// comes from the email string, and unknown emails get a profile on the fly.
// Real identity verification is out of scope for the demo backend.
func (s *UserService) Login(ctx context.Context, email, password string) (*user.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return u, nil
	}

	role := RoleFromEmail(email)
	u = &user.User{
		Email: email,
		Role:  role,
	}
	if role == user.RoleMerchant {
		u.MerchantID = newMerchantID()
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return u.Role == user.RoleAdmin, nil
}

func newMerchantID() string {
	return fmt.Sprintf("M%d", time.Now().UnixMilli())
}

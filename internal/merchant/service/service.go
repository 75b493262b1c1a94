package service

import (
	"context"
	"errors"
	"strings"

	"merchantapp/internal/merchant"
)

var ErrNotPending = errors.New("merchant is not awaiting approval")

type MerchantRepository interface {
	List(ctx context.Context) ([]merchant.Merchant, error)
	GetByID(ctx context.Context, id string) (*merchant.Merchant, error)
	UpdateStatus(ctx context.Context, id string, status merchant.Status) (*merchant.Merchant, error)
}

type Filter struct {
	Search string
	Status string
	City   string
}

type Service struct {
	repo MerchantRepository
}

func NewService(repo MerchantRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f Filter) ([]merchant.Merchant, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]merchant.Merchant, 0, len(items))
	for _, m := range items {
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(m.StoreName), q) &&
				!strings.Contains(strings.ToLower(m.OwnerName), q) &&
				!strings.Contains(strings.ToLower(m.Email), q) {
				continue
			}
		}
		if f.Status != "" && f.Status != "all" && string(m.Status) != f.Status {
			continue
		}
		if f.City != "" && f.City != "all" && m.City != f.City {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered, nil
}

// Approve settles a pending application: approved merchants go active,
// rejected ones go inactive. Only pending merchants can be approved.
func (s *Service) Approve(ctx context.Context, id string, approved bool) (*merchant.Merchant, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != merchant.StatusPending {
		return nil, ErrNotPending
	}

	status := merchant.StatusInactive
	if approved {
		status = merchant.StatusActive
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) SetStatus(ctx context.Context, id string, status merchant.Status) (*merchant.Merchant, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}

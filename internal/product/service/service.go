package service

import (
	"context"
	"errors"
	"strings"

	"merchantapp/internal/product"
	"merchantapp/internal/subscription"
)

var ErrProductLimit = errors.New("product limit reached")

// Unlimited marks a plan without a quantity cap.
const Unlimited = -1

type ProductRepository interface {
	List(ctx context.Context, merchantID string) ([]product.Product, error)
	Count(ctx context.Context, merchantID string) (int, error)
	Create(ctx context.Context, merchantID string, p *product.Product) error
	Update(ctx context.Context, merchantID string, p *product.Product) error
	Delete(ctx context.Context, merchantID, productID string) error
}

type EntitlementService interface {
	HasFeatureAccess(ctx context.Context, merchantID string, required subscription.Tier) (bool, error)
}

type Service struct {
	repo         ProductRepository
	entitlements EntitlementService
}

func NewService(repo ProductRepository, entitlements EntitlementService) *Service {
	return &Service{repo: repo, entitlements: entitlements}
}

// ProductLimit is the quantity cap policy this module owns. The entitlement
// engine only answers the tier question, the numbers live here:
// premium and above are unlimited, basic gets 50, everyone else 10.
func (s *Service) ProductLimit(ctx context.Context, merchantID string) (int, error) {
	premium, err := s.entitlements.HasFeatureAccess(ctx, merchantID, subscription.TierPremium)
	if err != nil {
		return 0, err
	}
	if premium {
		return Unlimited, nil
	}

	basic, err := s.entitlements.HasFeatureAccess(ctx, merchantID, subscription.TierBasic)
	if err != nil {
		return 0, err
	}
	if basic {
		return 50, nil
	}

	return 10, nil
}

func (s *Service) List(ctx context.Context, merchantID, search, category string) ([]product.Product, error) {
	items, err := s.repo.List(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	filtered := make([]product.Product, 0, len(items))
	for _, p := range items {
		if search != "" {
			q := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Brand), q) {
				continue
			}
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (s *Service) Create(ctx context.Context, merchantID string, p *product.Product) error {
	limit, err := s.ProductLimit(ctx, merchantID)
	if err != nil {
		return err
	}

	if limit != Unlimited {
		count, err := s.repo.Count(ctx, merchantID)
		if err != nil {
			return err
		}
		if count >= limit {
			return ErrProductLimit
		}
	}

	if p.Status == "" {
		p.Status = product.StatusActive
	}
	return s.repo.Create(ctx, merchantID, p)
}

func (s *Service) Update(ctx context.Context, merchantID string, p *product.Product) error {
	return s.repo.Update(ctx, merchantID, p)
}

func (s *Service) Delete(ctx context.Context, merchantID, productID string) error {
	return s.repo.Delete(ctx, merchantID, productID)
}

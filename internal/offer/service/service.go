package service

import (
	"context"
	"errors"

	"merchantapp/internal/offer"
	"merchantapp/internal/subscription"
)

var (
	ErrPremiumRequired = errors.New("custom offers require a premium subscription")
	ErrInvalidDates    = errors.New("end date must be after start date")
)

type OfferRepository interface {
	List(ctx context.Context, merchantID string) ([]offer.Offer, error)
	GetByID(ctx context.Context, merchantID, offerID string) (*offer.Offer, error)
	Create(ctx context.Context, merchantID string, o *offer.Offer) error
	Update(ctx context.Context, merchantID string, o *offer.Offer) error
	Delete(ctx context.Context, merchantID, offerID string) error
}

type EntitlementService interface {
	HasFeatureAccess(ctx context.Context, merchantID string, required subscription.Tier) (bool, error)
}

type Service struct {
	repo         OfferRepository
	entitlements EntitlementService
}

func NewService(repo OfferRepository, entitlements EntitlementService) *Service {
	return &Service{repo: repo, entitlements: entitlements}
}

func (s *Service) List(ctx context.Context, merchantID string) ([]offer.Offer, error) {
	return s.repo.List(ctx, merchantID)
}

func (s *Service) requirePremium(ctx context.Context, merchantID string) error {
	ok, err := s.entitlements.HasFeatureAccess(ctx, merchantID, subscription.TierPremium)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPremiumRequired
	}
	return nil
}

func (s *Service) Create(ctx context.Context, merchantID string, o *offer.Offer) error {
	if err := s.requirePremium(ctx, merchantID); err != nil {
		return err
	}
	if !o.EndDate.After(o.StartDate) {
		return ErrInvalidDates
	}

	if o.Status == "" {
		o.Status = offer.StatusActive
	}
	o.CurrentUsage = 0
	return s.repo.Create(ctx, merchantID, o)
}

// Update rewrites the editable fields. The usage counter always carries over
// from the stored record, and an omitted status keeps the stored one.
func (s *Service) Update(ctx context.Context, merchantID string, o *offer.Offer) error {
	if err := s.requirePremium(ctx, merchantID); err != nil {
		return err
	}
	if !o.EndDate.After(o.StartDate) {
		return ErrInvalidDates
	}

	existing, err := s.repo.GetByID(ctx, merchantID, o.ID)
	if err != nil {
		return err
	}
	o.CurrentUsage = existing.CurrentUsage
	if o.Status == "" {
		o.Status = existing.Status
	}

	return s.repo.Update(ctx, merchantID, o)
}

func (s *Service) Delete(ctx context.Context, merchantID, offerID string) error {
	return s.repo.Delete(ctx, merchantID, offerID)
}

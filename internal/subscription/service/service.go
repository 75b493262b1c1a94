package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"merchantapp/internal/metrics"
	"merchantapp/internal/payment"
	"merchantapp/internal/subscription"
)

var (
	ErrUnknownPlan    = errors.New("unknown plan")
	ErrNoSubscription = errors.New("no subscription")
)

type SubscriptionRepository interface {
	GetByMerchantID(ctx context.Context, merchantID string) (*subscription.Subscription, error)
	Replace(ctx context.Context, merchantID string, sub *subscription.Subscription) error
}

type Service struct {
	repo     SubscriptionRepository
	payments payment.Processor
	now      func() time.Time
}

func NewService(repo SubscriptionRepository, payments payment.Processor) *Service {
	return &Service{
		repo:     repo,
		payments: payments,
		now:      time.Now,
	}
}

// WithClock overrides the time source, tests pin it to a fixed instant.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Current(ctx context.Context, merchantID string) (*subscription.Subscription, error) {
	return s.repo.GetByMerchantID(ctx, merchantID)
}

func (s *Service) IsActive(ctx context.Context, merchantID string) (bool, error) {
	sub, err := s.repo.GetByMerchantID(ctx, merchantID)
	if err != nil {
		return false, err
	}
	return subscription.IsActive(sub, s.now()), nil
}

func (s *Service) DaysUntilExpiry(ctx context.Context, merchantID string) (int, error) {
	sub, err := s.repo.GetByMerchantID(ctx, merchantID)
	if err != nil {
		return 0, err
	}
	return subscription.DaysUntilExpiry(sub, s.now()), nil
}

// HasFeatureAccess answers "does this merchant currently have at least the
// required tier". Quantity caps stay with the consuming modules, this is only
// the tier comparison.
func (s *Service) HasFeatureAccess(ctx context.Context, merchantID string, required subscription.Tier) (bool, error) {
	sub, err := s.repo.GetByMerchantID(ctx, merchantID)
	if err != nil {
		return false, err
	}

	granted := subscription.HasFeatureAccess(sub, required, s.now())
	result := "denied"
	if granted {
		result = "granted"
	}
	metrics.EntitlementChecksTotal.WithLabelValues(string(required), result).Inc()

	return granted, nil
}

// Subscribe charges the chosen plan and replaces any prior subscription with a
// fresh record. A rejected payment leaves existing state untouched.
func (s *Service) Subscribe(ctx context.Context, merchantID string, planID subscription.Tier, gateway string) (*subscription.Subscription, error) {
	plan, ok := subscription.PlanByID(planID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlan, planID)
	}

	conf, err := s.payments.Charge(ctx, merchantID, plan, gateway)
	if err != nil {
		return nil, err
	}

	prior, err := s.repo.GetByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sub := &subscription.Subscription{
		PlanID:        plan.ID,
		PlanName:      plan.Name,
		StartsAt:      now,
		EndsAt:        subscription.AddMonths(now, plan.DurationMonths),
		Status:        subscription.StatusActive,
		AutoRenew:     true,
		PaymentMethod: conf.Method,
		TransactionID: conf.TransactionID,
	}

	if err := s.repo.Replace(ctx, merchantID, sub); err != nil {
		return nil, err
	}

	// the gauge tracks stored records, so a replacement moves one between labels
	if prior != nil {
		metrics.SubscriptionsByPlan.WithLabelValues(string(prior.PlanID)).Dec()
	}
	metrics.SubscriptionsByPlan.WithLabelValues(string(plan.ID)).Inc()
	return sub, nil
}

// CancelAutoRenew flips the renewal flag and nothing else. Access continues
// until the end date.
func (s *Service) CancelAutoRenew(ctx context.Context, merchantID string) (*subscription.Subscription, error) {
	sub, err := s.repo.GetByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNoSubscription
	}

	sub.AutoRenew = false
	if err := s.repo.Replace(ctx, merchantID, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

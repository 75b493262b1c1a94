package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchantapp/internal/offer"
	"merchantapp/internal/offer/repository"
	"merchantapp/internal/subscription"
)

type stubEntitlements struct {
	sub *subscription.Subscription
}

func (s *stubEntitlements) HasFeatureAccess(ctx context.Context, merchantID string, required subscription.Tier) (bool, error) {
	return subscription.HasFeatureAccess(s.sub, required, time.Now()), nil
}

func activeSub(plan subscription.Tier) *subscription.Subscription {
	now := time.Now()
	return &subscription.Subscription{
		PlanID:   plan,
		StartsAt: now.AddDate(0, -1, 0),
		EndsAt:   now.AddDate(0, 1, 0),
		Status:   subscription.StatusActive,
	}
}

func validOffer() *offer.Offer {
	now := time.Now()
	return &offer.Offer{
		Title:         "Weekend Deal",
		Description:   "10% off accessories",
		DiscountType:  offer.DiscountPercentage,
		DiscountValue: 10,
		StartDate:     now,
		EndDate:       now.AddDate(0, 0, 2),
	}
}

func TestCreateRequiresPremium(t *testing.T) {
	ctx := context.Background()

	basic := NewService(repository.NewMemoryRepository(), &stubEntitlements{sub: activeSub(subscription.TierBasic)})
	err := basic.Create(ctx, "M001", validOffer())
	assert.ErrorIs(t, err, ErrPremiumRequired)

	none := NewService(repository.NewMemoryRepository(), &stubEntitlements{sub: nil})
	err = none.Create(ctx, "M001", validOffer())
	assert.ErrorIs(t, err, ErrPremiumRequired)

	premium := NewService(repository.NewMemoryRepository(), &stubEntitlements{sub: activeSub(subscription.TierPremium)})
	err = premium.Create(ctx, "M001", validOffer())
	require.NoError(t, err)
}

func TestCreateRejectsInvertedDates(t *testing.T) {
	svc := NewService(repository.NewMemoryRepository(), &stubEntitlements{sub: activeSub(subscription.TierEnterprise)})

	o := validOffer()
	o.EndDate = o.StartDate.AddDate(0, 0, -1)
	err := svc.Create(context.Background(), "M001", o)
	assert.ErrorIs(t, err, ErrInvalidDates)
}

func TestCreateResetsUsage(t *testing.T) {
	ctx := context.Background()
	svc := NewService(repository.NewMemoryRepository(), &stubEntitlements{sub: activeSub(subscription.TierPremium)})

	o := validOffer()
	o.CurrentUsage = 99
	require.NoError(t, svc.Create(ctx, "M001", o))
	assert.Zero(t, o.CurrentUsage)
	assert.Equal(t, offer.StatusActive, o.Status)
}

func TestUpdatePreservesUsageAndStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewService(repository.NewMemoryRepository(), &stubEntitlements{sub: activeSub(subscription.TierPremium)})

	// seeded "Flash Sale" carries CurrentUsage 45 and status active
	edit := validOffer()
	edit.ID = "1"
	edit.Title = "Flash Sale - 25% Off"
	edit.DiscountValue = 25
	require.NoError(t, svc.Update(ctx, "M001", edit))

	stored, err := svc.repo.GetByID(ctx, "M001", "1")
	require.NoError(t, err)
	assert.Equal(t, "Flash Sale - 25% Off", stored.Title)
	assert.Equal(t, 45, stored.CurrentUsage)
	assert.Equal(t, offer.StatusActive, stored.Status)
}

func TestUpdateCanChangeStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewService(repository.NewMemoryRepository(), &stubEntitlements{sub: activeSub(subscription.TierPremium)})

	edit := validOffer()
	edit.ID = "1"
	edit.Status = offer.StatusInactive
	require.NoError(t, svc.Update(ctx, "M001", edit))

	stored, err := svc.repo.GetByID(ctx, "M001", "1")
	require.NoError(t, err)
	assert.Equal(t, offer.StatusInactive, stored.Status)
	assert.Equal(t, 45, stored.CurrentUsage)
}

func TestUpdateUnknownOffer(t *testing.T) {
	svc := NewService(repository.NewMemoryRepository(), &stubEntitlements{sub: activeSub(subscription.TierPremium)})

	edit := validOffer()
	edit.ID = "99"
	err := svc.Update(context.Background(), "M001", edit)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListSeededOffers(t *testing.T) {
	svc := NewService(repository.NewMemoryRepository(), &stubEntitlements{sub: nil})

	// listing is not gated, only creating/updating is
	offers, err := svc.List(context.Background(), "M001")
	require.NoError(t, err)
	assert.Len(t, offers, 2)
}

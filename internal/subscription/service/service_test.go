package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchantapp/internal/metrics"
	"merchantapp/internal/payment"
	"merchantapp/internal/subscription"
	"merchantapp/internal/subscription/repository"
)

var now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type stubProcessor struct {
	reject bool
	calls  int
}

func (p *stubProcessor) Charge(ctx context.Context, merchantID string, plan subscription.Plan, gateway string) (*payment.Confirmation, error) {
	p.calls++
	if p.reject {
		return nil, payment.ErrPaymentRejected
	}
	return &payment.Confirmation{TransactionID: "pay_test_1", Method: "Razorpay"}, nil
}

func newTestService(proc payment.Processor) *Service {
	return NewService(repository.NewMemoryRepository(), proc).WithClock(func() time.Time { return now })
}

func TestSubscribeCreatesFreshRecord(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&stubProcessor{})

	sub, err := svc.Subscribe(ctx, "M001", subscription.TierPremium, "razorpay")
	require.NoError(t, err)

	assert.Equal(t, subscription.TierPremium, sub.PlanID)
	assert.Equal(t, now, sub.StartsAt)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), sub.EndsAt)
	assert.Equal(t, subscription.StatusActive, sub.Status)
	assert.True(t, sub.AutoRenew)
	assert.Equal(t, "pay_test_1", sub.TransactionID)

	active, err := svc.IsActive(ctx, "M001")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestSubscribeReplacesPriorSubscription(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&stubProcessor{})

	_, err := svc.Subscribe(ctx, "M001", subscription.TierBasic, "razorpay")
	require.NoError(t, err)

	old, err := svc.Current(ctx, "M001")
	require.NoError(t, err)

	// cancel renewal, then buy a new plan: the replacement resets everything
	_, err = svc.CancelAutoRenew(ctx, "M001")
	require.NoError(t, err)

	sub, err := svc.Subscribe(ctx, "M001", subscription.TierEnterprise, "stripe")
	require.NoError(t, err)

	assert.Equal(t, subscription.TierEnterprise, sub.PlanID)
	assert.True(t, sub.AutoRenew)
	assert.NotEqual(t, old.EndsAt, sub.EndsAt)
}

func TestSubscribeRejectedPaymentLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	proc := &stubProcessor{}
	svc := newTestService(proc)

	_, err := svc.Subscribe(ctx, "M001", subscription.TierBasic, "razorpay")
	require.NoError(t, err)

	proc.reject = true
	_, err = svc.Subscribe(ctx, "M001", subscription.TierPremium, "razorpay")
	assert.ErrorIs(t, err, payment.ErrPaymentRejected)

	sub, err := svc.Current(ctx, "M001")
	require.NoError(t, err)
	assert.Equal(t, subscription.TierBasic, sub.PlanID)
}

func TestSubscribeUnknownPlan(t *testing.T) {
	proc := &stubProcessor{}
	svc := newTestService(proc)

	_, err := svc.Subscribe(context.Background(), "M001", subscription.Tier("gold"), "razorpay")
	assert.ErrorIs(t, err, ErrUnknownPlan)
	assert.Zero(t, proc.calls, "no charge attempted for an unknown plan")
}

func TestSubscribeMovesPlanGauge(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&stubProcessor{})

	basicGauge := metrics.SubscriptionsByPlan.WithLabelValues(string(subscription.TierBasic))
	premiumGauge := metrics.SubscriptionsByPlan.WithLabelValues(string(subscription.TierPremium))
	basicBefore := testutil.ToFloat64(basicGauge)
	premiumBefore := testutil.ToFloat64(premiumGauge)

	_, err := svc.Subscribe(ctx, "M001", subscription.TierBasic, "razorpay")
	require.NoError(t, err)
	assert.Equal(t, basicBefore+1, testutil.ToFloat64(basicGauge))

	// upgrading moves the stored record from one label to the other
	_, err = svc.Subscribe(ctx, "M001", subscription.TierPremium, "razorpay")
	require.NoError(t, err)
	assert.Equal(t, basicBefore, testutil.ToFloat64(basicGauge))
	assert.Equal(t, premiumBefore+1, testutil.ToFloat64(premiumGauge))
}

func TestCancelAutoRenewKeepsAccess(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&stubProcessor{})

	_, err := svc.Subscribe(ctx, "M001", subscription.TierPremium, "razorpay")
	require.NoError(t, err)

	sub, err := svc.CancelAutoRenew(ctx, "M001")
	require.NoError(t, err)
	assert.False(t, sub.AutoRenew)
	assert.Equal(t, subscription.StatusActive, sub.Status)

	active, err := svc.IsActive(ctx, "M001")
	require.NoError(t, err)
	assert.True(t, active, "access persists until the end date")

	granted, err := svc.HasFeatureAccess(ctx, "M001", subscription.TierPremium)
	require.NoError(t, err)
	assert.True(t, granted)
}

func TestCancelAutoRenewWithoutSubscription(t *testing.T) {
	svc := newTestService(&stubProcessor{})

	_, err := svc.CancelAutoRenew(context.Background(), "M404")
	assert.True(t, errors.Is(err, ErrNoSubscription))
}

func TestQueriesWithoutSubscription(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&stubProcessor{})

	active, err := svc.IsActive(ctx, "M404")
	require.NoError(t, err)
	assert.False(t, active)

	days, err := svc.DaysUntilExpiry(ctx, "M404")
	require.NoError(t, err)
	assert.Zero(t, days)

	granted, err := svc.HasFeatureAccess(ctx, "M404", subscription.TierBasic)
	require.NoError(t, err)
	assert.False(t, granted)
}

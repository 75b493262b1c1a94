package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchantapp/internal/subscription"
)

func TestChargeConfirms(t *testing.T) {
	p := NewSimulatedProcessor(10 * time.Millisecond)
	plan, _ := subscription.PlanByID(subscription.TierPremium)

	conf, err := p.Charge(context.Background(), "M001", plan, "razorpay")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(conf.TransactionID, "pay_"))
	assert.Equal(t, "Razorpay", conf.Method)
}

func TestChargeUnknownGateway(t *testing.T) {
	p := NewSimulatedProcessor(0)
	plan, _ := subscription.PlanByID(subscription.TierBasic)

	_, err := p.Charge(context.Background(), "M001", plan, "paypal")
	assert.ErrorIs(t, err, ErrPaymentRejected)
}

func TestChargeCancelledContext(t *testing.T) {
	p := NewSimulatedProcessor(time.Second)
	plan, _ := subscription.PlanByID(subscription.TierBasic)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Charge(ctx, "M001", plan, "razorpay")
	assert.ErrorIs(t, err, ErrPaymentRejected)
}

func TestGatewayCatalog(t *testing.T) {
	gws := Gateways()
	assert.Len(t, gws, 4)

	ids := make([]string, 0, len(gws))
	for _, g := range gws {
		ids = append(ids, g.ID)
	}
	assert.Contains(t, ids, "razorpay")
	assert.Contains(t, ids, "stripe")
}

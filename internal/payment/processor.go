package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"merchantapp/internal/metrics"
	"merchantapp/internal/subscription"
)

var ErrPaymentRejected = errors.New("payment rejected")

// Confirmation is the opaque receipt a successful charge produces. The
// subscription layer copies it onto the new record and never interprets it.
type Confirmation struct {
	TransactionID string
	Method        string
}

type Processor interface {
	Charge(ctx context.Context, merchantID string, plan subscription.Plan, gateway string) (*Confirmation, error)
}

type Gateway struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var gateways = []Gateway{
	{ID: "razorpay", Name: "Razorpay", Description: "UPI, Cards, Wallets"},
	{ID: "stripe", Name: "Stripe", Description: "International Cards"},
	{ID: "payu", Name: "PayU", Description: "All Payment Methods"},
	{ID: "cashfree", Name: "Cashfree", Description: "Banking & UPI"},
}

func Gateways() []Gateway {
	out := make([]Gateway, len(gateways))
	copy(out, gateways)
	return out
}

// SimulatedProcessor stands in for a real gateway integration. Charges resolve
// after a short delay with a fresh transaction id, there is no partial state.
type SimulatedProcessor struct {
	delay time.Duration
	cb    *gobreaker.CircuitBreaker
}

func NewSimulatedProcessor(delay time.Duration) *SimulatedProcessor {
	p := &SimulatedProcessor{delay: delay}

	p.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "payment-gateway",
		MaxRequests: 3,
		Interval:    5 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Printf("Circuit breaker '%s' changed from %s to %s", name, from, to)
		},
	})

	return p
}

func (p *SimulatedProcessor) Charge(ctx context.Context, merchantID string, plan subscription.Plan, gateway string) (*Confirmation, error) {
	conf, err := p.cb.Execute(func() (interface{}, error) {
		return p.charge(ctx, plan, gateway)
	})
	if err != nil {
		metrics.PaymentChargesTotal.WithLabelValues(gateway, "rejected").Inc()
		return nil, err
	}

	metrics.PaymentChargesTotal.WithLabelValues(gateway, "confirmed").Inc()
	return conf.(*Confirmation), nil
}

func (p *SimulatedProcessor) charge(ctx context.Context, plan subscription.Plan, gateway string) (*Confirmation, error) {
	gw, ok := gatewayByID(gateway)
	if !ok {
		return nil, fmt.Errorf("%w: unknown gateway %q", ErrPaymentRejected, gateway)
	}

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrPaymentRejected, ctx.Err())
		}
	}

	return &Confirmation{
		TransactionID: "pay_" + uuid.NewString(),
		Method:        gw.Name,
	}, nil
}

func gatewayByID(id string) (Gateway, bool) {
	for _, g := range gateways {
		if g.ID == id {
			return g, true
		}
	}
	return Gateway{}, false
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchantapp/internal/customer"
	"merchantapp/internal/customer/repository"
)

func TestDecide(t *testing.T) {
	svc := NewService(repository.NewMemoryRepository())
	ctx := context.Background()

	req, err := svc.Decide(ctx, "M001", "1", customer.RequestAccepted)
	require.NoError(t, err)
	assert.Equal(t, customer.RequestAccepted, req.Status)

	// decisions are final
	_, err = svc.Decide(ctx, "M001", "1", customer.RequestRejected)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestDecideUnknownRequest(t *testing.T) {
	svc := NewService(repository.NewMemoryRepository())

	_, err := svc.Decide(context.Background(), "M001", "99", customer.RequestRejected)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDecideIsPerMerchant(t *testing.T) {
	svc := NewService(repository.NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Decide(ctx, "M001", "2", customer.RequestRejected)
	require.NoError(t, err)

	// another merchant's copy of the same seed stays pending
	requests, err := svc.Requests(ctx, "M002")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, customer.RequestPending, requests[1].Status)
}

func TestNotifyCountsOnlineCustomers(t *testing.T) {
	svc := NewService(repository.NewMemoryRepository())

	reached, err := svc.Notify(context.Background(), "M001", "Weekend sale, 20% off smartphones!")
	require.NoError(t, err)
	assert.Equal(t, 2, reached)
}

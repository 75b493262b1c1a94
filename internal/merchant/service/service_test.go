package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchantapp/internal/merchant"
	"merchantapp/internal/merchant/repository"
)

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewService(repository.NewMemoryRepository())

	all, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := svc.List(ctx, Filter{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "M002", pending[0].ID)

	mumbai, err := svc.List(ctx, Filter{City: "Mumbai"})
	require.NoError(t, err)
	assert.Len(t, mumbai, 1)

	byOwner, err := svc.List(ctx, Filter{Search: "rajesh"})
	require.NoError(t, err)
	require.Len(t, byOwner, 1)
	assert.Equal(t, "Tech World Electronics", byOwner[0].StoreName)
}

func TestApprovePendingMerchant(t *testing.T) {
	ctx := context.Background()
	svc := NewService(repository.NewMemoryRepository())

	m, err := svc.Approve(ctx, "M002", true)
	require.NoError(t, err)
	assert.Equal(t, merchant.StatusActive, m.Status)

	// already settled, second decision fails
	_, err = svc.Approve(ctx, "M002", false)
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestRejectPendingMerchant(t *testing.T) {
	ctx := context.Background()
	svc := NewService(repository.NewMemoryRepository())

	m, err := svc.Approve(ctx, "M002", false)
	require.NoError(t, err)
	assert.Equal(t, merchant.StatusInactive, m.Status)
}

func TestApproveNonPendingMerchant(t *testing.T) {
	svc := NewService(repository.NewMemoryRepository())

	_, err := svc.Approve(context.Background(), "M001", true)
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewService(repository.NewMemoryRepository())

	m, err := svc.SetStatus(ctx, "M001", merchant.StatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, merchant.StatusSuspended, m.Status)

	_, err = svc.SetStatus(ctx, "M404", merchant.StatusActive)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

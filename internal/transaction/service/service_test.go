package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchantapp/internal/transaction"
	"merchantapp/internal/transaction/repository"
)

func TestListWithFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewService(repository.NewMemoryRepository())

	all, summary, err := svc.List(ctx, "M001", Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, 3, summary.CompletedCount)
	assert.InDelta(t, 400798.0, summary.TotalAmount, 0.01)

	completed, _, err := svc.List(ctx, "M001", Filter{Status: "completed"})
	require.NoError(t, err)
	assert.Len(t, completed, 3)

	paid, _, err := svc.List(ctx, "M001", Filter{Payout: "paid"})
	require.NoError(t, err)
	assert.Len(t, paid, 2)

	byName, _, err := svc.List(ctx, "M001", Filter{Search: "jane"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "TXN001234568", byName[0].TransactionID)

	byTxn, _, err := svc.List(ctx, "M001", Filter{Search: "txn001234570"})
	require.NoError(t, err)
	require.Len(t, byTxn, 1)
	assert.Equal(t, transaction.StatusCompleted, byTxn[0].Status)

	none, emptySummary, err := svc.List(ctx, "M001", Filter{Status: "failed"})
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Zero(t, emptySummary.TotalAmount)
}

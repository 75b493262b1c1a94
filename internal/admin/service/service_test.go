package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merchantrepo "merchantapp/internal/merchant/repository"
	reportrepo "merchantapp/internal/report/repository"
)

func TestSummary(t *testing.T) {
	svc := NewService(merchantrepo.NewMemoryRepository(), reportrepo.NewMemoryRepository())

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, got.TotalMerchants)
	assert.Equal(t, 3, got.TotalReports)
	assert.Equal(t, 1, got.Merchants["active"])
	assert.Equal(t, 1, got.Merchants["pending"])
	assert.Equal(t, 1, got.Merchants["suspended"])
	assert.Equal(t, 1, got.Reports["pending"])
	assert.Equal(t, 1, got.Reports["investigating"])
	assert.Equal(t, 1, got.Reports["resolved"])
	assert.InDelta(t, 730000, got.TotalRevenue, 0.01)
	assert.Equal(t, 214, got.TotalOrders)
}

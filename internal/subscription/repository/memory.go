package repository

import (
	"context"
	"sync"

	"merchantapp/internal/subscription"
)

// MemoryRepository keeps one subscription record per merchant. There is no
// backing store, state lives for the lifetime of the process.
type MemoryRepository struct {
	mu   sync.RWMutex
	subs map[string]*subscription.Subscription
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		subs: make(map[string]*subscription.Subscription),
	}
}

// GetByMerchantID returns the merchant's subscription or nil when none was
// ever purchased. Absence is not an error.
func (r *MemoryRepository) GetByMerchantID(ctx context.Context, merchantID string) (*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.subs[merchantID]
	if !ok {
		return nil, nil
	}
	cp := *sub
	return &cp, nil
}

// Replace overwrites the merchant's subscription wholesale. Purchasing a new
// plan never merges with or stacks on top of the prior record.
func (r *MemoryRepository) Replace(ctx context.Context, merchantID string, sub *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *sub
	r.subs[merchantID] = &cp
	return nil
}

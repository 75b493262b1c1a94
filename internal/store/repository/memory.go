package repository

import (
	"context"
	"sync"

	"merchantapp/internal/store"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	byOwner map[string]*store.Store
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byOwner: make(map[string]*store.Store),
	}
}

func seedStore() *store.Store {
	return &store.Store{
		Name:        "Sample Electronics Store",
		Address:     "123 Main Street, City, State - 123456",
		Phone:       "+91 9876543210",
		Latitude:    28.6139,
		Longitude:   77.2090,
		OpenTime:    "09:00",
		CloseTime:   "21:00",
		IsOpen:      true,
		Description: "Your trusted electronics store with the latest gadgets and accessories.",
	}
}

func (r *MemoryRepository) Get(ctx context.Context, merchantID string) (*store.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byOwner[merchantID]; !ok {
		r.byOwner[merchantID] = seedStore()
	}

	cp := *r.byOwner[merchantID]
	return &cp, nil
}

func (r *MemoryRepository) Update(ctx context.Context, merchantID string, s *store.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *s
	r.byOwner[merchantID] = &cp
	return nil
}

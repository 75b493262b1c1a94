package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"merchantapp/internal/customer"
)

var ErrNotFound = errors.New("request not found")

type MemoryRepository struct {
	mu       sync.RWMutex
	nearby   []customer.Customer
	requests map[string][]customer.Request
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nearby: []customer.Customer{
			{ID: "1", Name: "John Doe", DistanceKm: 1.2, LastSeen: "2 mins ago", TotalOrders: 5, PreferredCategories: []string{"Smartphones", "Accessories"}, Status: customer.PresenceOnline},
			{ID: "2", Name: "Jane Smith", DistanceKm: 2.8, LastSeen: "15 mins ago", TotalOrders: 12, PreferredCategories: []string{"Laptops", "Tablets"}, Status: customer.PresenceOnline},
			{ID: "3", Name: "Mike Johnson", DistanceKm: 3.5, LastSeen: "1 hour ago", TotalOrders: 3, PreferredCategories: []string{"Smart Watches"}, Status: customer.PresenceOffline},
		},
		requests: make(map[string][]customer.Request),
	}
}

func seedRequests() []customer.Request {
	now := time.Now()
	return []customer.Request{
		{ID: "1", CustomerID: "1", CustomerName: "John Doe", Message: "Hi! I'm interested in the iPhone 15 Pro. Can you offer any discount?", RequestedDiscount: 15, Category: "Smartphones", CreatedAt: now.Add(-5 * time.Minute), Status: customer.RequestPending},
		{ID: "2", CustomerID: "2", CustomerName: "Jane Smith", Message: "Looking for a MacBook Air. Any ongoing offers?", RequestedDiscount: 10, Category: "Laptops", CreatedAt: now.Add(-12 * time.Minute), Status: customer.RequestPending},
	}
}

func (r *MemoryRepository) ensure(merchantID string) []customer.Request {
	if _, ok := r.requests[merchantID]; !ok {
		r.requests[merchantID] = seedRequests()
	}
	return r.requests[merchantID]
}

func (r *MemoryRepository) Nearby(ctx context.Context) ([]customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]customer.Customer, len(r.nearby))
	copy(out, r.nearby)
	return out, nil
}

func (r *MemoryRepository) Requests(ctx context.Context, merchantID string) ([]customer.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.ensure(merchantID)
	out := make([]customer.Request, len(items))
	copy(out, items)
	return out, nil
}

func (r *MemoryRepository) UpdateRequestStatus(ctx context.Context, merchantID, requestID string, status customer.RequestStatus) (*customer.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.ensure(merchantID)
	for i := range items {
		if items[i].ID == requestID {
			items[i].Status = status
			cp := items[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"merchantapp/internal/merchant"
)

var ErrNotFound = errors.New("merchant not found")

type MemoryRepository struct {
	mu        sync.RWMutex
	merchants []merchant.Merchant
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		merchants: []merchant.Merchant{
			{
				ID: "M001", StoreName: "Tech World Electronics", OwnerName: "Rajesh Kumar",
				Email: "rajesh@techworld.com", Phone: "+91 9876543210", Address: "123 MG Road, Bangalore",
				City: "Bangalore", Status: merchant.StatusActive,
				JoinDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				TotalRevenue: 450000, TotalOrders: 125, Rating: 4.8,
				ExclusivityEndDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			},
			{
				ID: "M002", StoreName: "Mobile Hub", OwnerName: "Priya Sharma",
				Email: "priya@mobilehub.com", Phone: "+91 9876543211", Address: "456 Park Street, Mumbai",
				City: "Mumbai", Status: merchant.StatusPending,
				JoinDate:     time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
				TotalRevenue: 0, TotalOrders: 0, Rating: 0,
				ExclusivityEndDate: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
			},
			{
				ID: "M003", StoreName: "Gadget Galaxy", OwnerName: "Amit Patel",
				Email: "amit@gadgetgalaxy.com", Phone: "+91 9876543212", Address: "789 CP, Delhi",
				City: "Delhi", Status: merchant.StatusSuspended,
				JoinDate:     time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC),
				TotalRevenue: 280000, TotalOrders: 89, Rating: 3.2,
				ExclusivityEndDate: time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]merchant.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]merchant.Merchant, len(r.merchants))
	copy(out, r.merchants)
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*merchant.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.merchants {
		if r.merchants[i].ID == id {
			cp := r.merchants[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) UpdateStatus(ctx context.Context, id string, status merchant.Status) (*merchant.Merchant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.merchants {
		if r.merchants[i].ID == id {
			r.merchants[i].Status = status
			cp := r.merchants[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

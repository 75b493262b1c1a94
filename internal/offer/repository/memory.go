package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"merchantapp/internal/offer"
)

var ErrNotFound = errors.New("offer not found")

type MemoryRepository struct {
	mu      sync.RWMutex
	byOwner map[string][]offer.Offer
	nextID  int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byOwner: make(map[string][]offer.Offer),
		nextID:  100,
	}
}

func seedOffers() []offer.Offer {
	now := time.Now()
	return []offer.Offer{
		{
			ID:            "1",
			Title:         "Flash Sale - 20% Off",
			Description:   "Get 20% off on all smartphones",
			DiscountType:  offer.DiscountPercentage,
			DiscountValue: 20,
			StartDate:     now,
			EndDate:       now.AddDate(0, 0, 7),
			MaxUsage:      100,
			CurrentUsage:  45,
			MinOrderValue: 5000,
			Status:        offer.StatusActive,
			Categories:    []string{"Smartphones"},
		},
		{
			ID:            "2",
			Title:         "Laptop Bonanza",
			Description:   "Flat ₹10,000 off on premium laptops",
			DiscountType:  offer.DiscountFixed,
			DiscountValue: 10000,
			StartDate:     now.AddDate(0, 0, 1),
			EndDate:       now.AddDate(0, 0, 14),
			MaxUsage:      50,
			CurrentUsage:  12,
			MinOrderValue: 50000,
			Status:        offer.StatusActive,
			Categories:    []string{"Laptops"},
		},
	}
}

func (r *MemoryRepository) ensure(merchantID string) []offer.Offer {
	if _, ok := r.byOwner[merchantID]; !ok {
		r.byOwner[merchantID] = seedOffers()
	}
	return r.byOwner[merchantID]
}

func (r *MemoryRepository) List(ctx context.Context, merchantID string) ([]offer.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.ensure(merchantID)
	out := make([]offer.Offer, len(items))
	copy(out, items)
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, merchantID, offerID string) (*offer.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.ensure(merchantID)
	for i := range items {
		if items[i].ID == offerID {
			cp := items[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) Create(ctx context.Context, merchantID string, o *offer.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.ensure(merchantID)
	r.nextID++
	o.ID = fmt.Sprintf("%d", r.nextID)
	r.byOwner[merchantID] = append(items, *o)
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, merchantID string, o *offer.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.ensure(merchantID)
	for i := range items {
		if items[i].ID == o.ID {
			items[i] = *o
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepository) Delete(ctx context.Context, merchantID, offerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.ensure(merchantID)
	for i := range items {
		if items[i].ID == offerID {
			r.byOwner[merchantID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

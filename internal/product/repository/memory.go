package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"merchantapp/internal/product"
)

var ErrNotFound = errors.New("product not found")

// MemoryRepository keeps each merchant's catalog in memory, seeded with the
// demo products on first access.
type MemoryRepository struct {
	mu      sync.RWMutex
	byOwner map[string][]product.Product
	nextID  int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byOwner: make(map[string][]product.Product),
		nextID:  100,
	}
}

func seedProducts() []product.Product {
	return []product.Product{
		{ID: "1", Name: "iPhone 15 Pro", Brand: "Apple", Category: "Smartphones", Price: 129900, Discount: 5, Color: "Natural Titanium", Stock: 15, Status: product.StatusActive},
		{ID: "2", Name: "Samsung Galaxy S24", Brand: "Samsung", Category: "Smartphones", Price: 89999, Discount: 10, Color: "Phantom Black", Stock: 22, Status: product.StatusActive},
		{ID: "3", Name: "MacBook Air M3", Brand: "Apple", Category: "Laptops", Price: 134900, Discount: 0, Color: "Midnight", Stock: 8, Status: product.StatusActive},
	}
}

func (r *MemoryRepository) ensure(merchantID string) []product.Product {
	if _, ok := r.byOwner[merchantID]; !ok {
		r.byOwner[merchantID] = seedProducts()
	}
	return r.byOwner[merchantID]
}

func (r *MemoryRepository) List(ctx context.Context, merchantID string) ([]product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.ensure(merchantID)
	out := make([]product.Product, len(items))
	copy(out, items)
	return out, nil
}

func (r *MemoryRepository) Count(ctx context.Context, merchantID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.ensure(merchantID)), nil
}

func (r *MemoryRepository) Create(ctx context.Context, merchantID string, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.ensure(merchantID)
	r.nextID++
	p.ID = fmt.Sprintf("%d", r.nextID)
	r.byOwner[merchantID] = append(items, *p)
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, merchantID string, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.ensure(merchantID)
	for i := range items {
		if items[i].ID == p.ID {
			items[i] = *p
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepository) Delete(ctx context.Context, merchantID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.ensure(merchantID)
	for i := range items {
		if items[i].ID == productID {
			r.byOwner[merchantID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

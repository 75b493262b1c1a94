package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"merchantapp/internal/user"
)

var ErrNotFound = errors.New("user not found")

type MemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*user.User
	nextID  int64
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byEmail: make(map[string]*user.User),
		nextID:  1,
	}
}

func (r *MemoryUserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return errors.New("email already registered")
	}

	u.ID = r.nextID
	r.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}

	cp := *u
	return &cp, nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

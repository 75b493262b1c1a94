package repository

import (
	"context"
	"sync"
	"time"

	"merchantapp/internal/token"
)

type RefreshTokenRepository struct {
	mu      sync.Mutex
	byToken map[string]*token.Token
	nextID  int64
}

func NewRefreshTokenRepository() *RefreshTokenRepository {
	return &RefreshTokenRepository{
		byToken: make(map[string]*token.Token),
		nextID:  1,
	}
}

func (r *RefreshTokenRepository) Save(ctx context.Context, t *token.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	t.CreatedAt = time.Now()

	cp := *t
	r.byToken[t.Token] = &cp
	return nil
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, tokenStr string) (*token.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byToken[tokenStr]
	if !ok {
		return nil, token.ErrInvalidToken
	}

	cp := *t
	return &cp, nil
}

func (r *RefreshTokenRepository) DeleteByToken(ctx context.Context, tokenStr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byToken, tokenStr)
	return nil
}

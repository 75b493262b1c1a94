package service

import (
	"context"
	"errors"

	"merchantapp/internal/customer"
)

var ErrAlreadyDecided = errors.New("request already decided")

type CustomerRepository interface {
	Nearby(ctx context.Context) ([]customer.Customer, error)
	Requests(ctx context.Context, merchantID string) ([]customer.Request, error)
	UpdateRequestStatus(ctx context.Context, merchantID, requestID string, status customer.RequestStatus) (*customer.Request, error)
}

type Service struct {
	repo CustomerRepository
}

func NewService(repo CustomerRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Nearby(ctx context.Context) ([]customer.Customer, error) {
	return s.repo.Nearby(ctx)
}

func (s *Service) Requests(ctx context.Context, merchantID string) ([]customer.Request, error) {
	return s.repo.Requests(ctx, merchantID)
}

// Decide accepts or rejects a pending discount request. Decisions are final.
func (s *Service) Decide(ctx context.Context, merchantID, requestID string, status customer.RequestStatus) (*customer.Request, error) {
	requests, err := s.repo.Requests(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	for _, req := range requests {
		if req.ID == requestID && req.Status != customer.RequestPending {
			return nil, ErrAlreadyDecided
		}
	}

	return s.repo.UpdateRequestStatus(ctx, merchantID, requestID, status)
}

// Notify simulates broadcasting a promo message to nearby customers. There is
// no push channel behind the demo, the count is the acknowledgement.
func (s *Service) Notify(ctx context.Context, merchantID, message string) (int, error) {
	nearby, err := s.repo.Nearby(ctx)
	if err != nil {
		return 0, err
	}

	reached := 0
	for _, c := range nearby {
		if c.Status == customer.PresenceOnline {
			reached++
		}
	}
	return reached, nil
}

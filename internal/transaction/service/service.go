package service

import (
	"context"
	"strings"

	"merchantapp/internal/transaction"
)

type TransactionRepository interface {
	List(ctx context.Context, merchantID string) ([]transaction.Transaction, error)
}

type Filter struct {
	Search string
	Status string
	Payout string
}

type Service struct {
	repo TransactionRepository
}

func NewService(repo TransactionRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, merchantID string, f Filter) ([]transaction.Transaction, transaction.Summary, error) {
	items, err := s.repo.List(ctx, merchantID)
	if err != nil {
		return nil, transaction.Summary{}, err
	}

	filtered := make([]transaction.Transaction, 0, len(items))
	for _, t := range items {
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(t.CustomerName), q) && !strings.Contains(strings.ToLower(t.TransactionID), q) {
				continue
			}
		}
		if f.Status != "" && f.Status != "all" && string(t.Status) != f.Status {
			continue
		}
		if f.Payout != "" && f.Payout != "all" && string(t.PayoutStatus) != f.Payout {
			continue
		}
		filtered = append(filtered, t)
	}

	summary := transaction.Summary{TotalCount: len(filtered)}
	for _, t := range filtered {
		summary.TotalAmount += t.Amount
		if t.Status == transaction.StatusCompleted {
			summary.CompletedCount++
		}
	}

	return filtered, summary, nil
}

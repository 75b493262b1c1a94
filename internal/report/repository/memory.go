package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"merchantapp/internal/report"
)

var ErrNotFound = errors.New("report not found")

type MemoryRepository struct {
	mu      sync.RWMutex
	reports []report.Report
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		reports: []report.Report{
			{
				ID: "R001", ReporterName: "John Doe", ReporterEmail: "john.doe@email.com",
				Type: report.TypeInappropriateContent, TargetType: report.TargetProduct,
				TargetName: "iPhone 15 Pro", TargetID: "P123",
				Description: "Product images contain inappropriate content that violates community guidelines.",
				Status:      report.StatusPending, Priority: report.PriorityHigh,
				CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			},
			{
				ID: "R002", ReporterName: "Jane Smith", ReporterEmail: "jane.smith@email.com",
				Type: report.TypeFakeProduct, TargetType: report.TargetMerchant,
				TargetName: "Tech World Electronics", TargetID: "M001",
				Description: "This merchant is selling counterfeit products claiming them to be original.",
				Status:      report.StatusInvestigating, Priority: report.PriorityCritical,
				CreatedAt: time.Date(2024, 1, 14, 15, 45, 0, 0, time.UTC),
			},
			{
				ID: "R003", ReporterName: "Mike Johnson", ReporterEmail: "mike.j@email.com",
				Type: report.TypePoorService, TargetType: report.TargetMerchant,
				TargetName: "Mobile Hub", TargetID: "M002",
				Description: "Merchant provided poor customer service and refused to honor warranty.",
				Status:      report.StatusResolved, Priority: report.PriorityMedium,
				AdminNotes: "Contacted merchant and resolved the issue. Merchant agreed to honor warranty.",
				CreatedAt:  time.Date(2024, 1, 13, 9, 20, 0, 0, time.UTC),
			},
		},
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]report.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]report.Report, len(r.reports))
	copy(out, r.reports)
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*report.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.reports {
		if r.reports[i].ID == id {
			cp := r.reports[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) Update(ctx context.Context, id string, status report.Status, notes string) (*report.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reports {
		if r.reports[i].ID == id {
			r.reports[i].Status = status
			if notes != "" {
				r.reports[i].AdminNotes = notes
			}
			cp := r.reports[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

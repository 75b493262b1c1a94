package service

import (
	"context"
	"strings"

	"merchantapp/internal/report"
)

type ReportRepository interface {
	List(ctx context.Context) ([]report.Report, error)
	GetByID(ctx context.Context, id string) (*report.Report, error)
	Update(ctx context.Context, id string, status report.Status, notes string) (*report.Report, error)
}

type Filter struct {
	Search   string
	Status   string
	Priority string
	Type     string
}

type Service struct {
	repo ReportRepository
}

func NewService(repo ReportRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f Filter) ([]report.Report, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]report.Report, 0, len(items))
	for _, rep := range items {
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(rep.ReporterName), q) &&
				!strings.Contains(strings.ToLower(rep.TargetName), q) &&
				!strings.Contains(strings.ToLower(rep.Description), q) {
				continue
			}
		}
		if f.Status != "" && f.Status != "all" && string(rep.Status) != f.Status {
			continue
		}
		if f.Priority != "" && f.Priority != "all" && string(rep.Priority) != f.Priority {
			continue
		}
		if f.Type != "" && f.Type != "all" && string(rep.Type) != f.Type {
			continue
		}
		filtered = append(filtered, rep)
	}
	return filtered, nil
}

func (s *Service) Get(ctx context.Context, id string) (*report.Report, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves a report through its review lifecycle. Notes, when
// present, replace the previous admin notes.
func (s *Service) UpdateStatus(ctx context.Context, id string, status report.Status, notes string) (*report.Report, error) {
	return s.repo.Update(ctx, id, status, notes)
}

package service

import (
	"context"

	"merchantapp/internal/merchant"
	"merchantapp/internal/report"
)

type MerchantLister interface {
	List(ctx context.Context) ([]merchant.Merchant, error)
}

type ReportLister interface {
	List(ctx context.Context) ([]report.Report, error)
}

type Summary struct {
	Merchants      map[string]int `json:"merchants"`
	Reports        map[string]int `json:"reports"`
	TotalRevenue   float64        `json:"total_revenue"`
	TotalOrders    int            `json:"total_orders"`
	TotalMerchants int            `json:"total_merchants"`
	TotalReports   int            `json:"total_reports"`
}

type Service struct {
	merchants MerchantLister
	reports   ReportLister
}

func NewService(merchants MerchantLister, reports ReportLister) *Service {
	return &Service{merchants: merchants, reports: reports}
}

// Summary aggregates the platform-wide counters shown on the admin dashboard.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	merchants, err := s.merchants.List(ctx)
	if err != nil {
		return nil, err
	}
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &Summary{
		Merchants:      make(map[string]int),
		Reports:        make(map[string]int),
		TotalMerchants: len(merchants),
		TotalReports:   len(reports),
	}
	for _, m := range merchants {
		out.Merchants[string(m.Status)]++
		out.TotalRevenue += m.TotalRevenue
		out.TotalOrders += m.TotalOrders
	}
	for _, rep := range reports {
		out.Reports[string(rep.Status)]++
	}
	return out, nil
}

package services

import (
	"time"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"
	"restaurant-pos-api/policy"
	"restaurant-pos-api/repository"
)

// ReportService computes the read-side rollups. Pure derived views; no
// invariants of their own.
type ReportService struct {
	reports  repository.ReportRepository
	payments repository.PaymentRepository
}

func NewReportService(reports repository.ReportRepository, payments repository.PaymentRepository) *ReportService {
	return &ReportService{reports: reports, payments: payments}
}

func (s *ReportService) authorize(actor models.Identity) error {
	if !policy.HasPermission(actor.Role, policy.PermReports) {
		return errs.E(errs.ErrAuthorization, "role %q may not view reports", actor.Role)
	}
	return nil
}

// ItemFrequency returns how often each menu item sold in [start, end)
func (s *ReportService) ItemFrequency(actor models.Identity, start, end time.Time) ([]repository.ItemCount, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	return s.reports.ItemFrequency(start, end)
}

type RevenueReport struct {
	Total    float64            `json:"total"`
	Tips     float64            `json:"tips"`
	ByMethod map[string]float64 `json:"by_method"`
	Daily    map[string]float64 `json:"daily"`
}

// Revenue breaks settled payments down by method and by day
func (s *ReportService) Revenue(actor models.Identity, start, end time.Time) (*RevenueReport, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	payments, err := s.payments.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	report := &RevenueReport{
		ByMethod: map[string]float64{},
		Daily:    map[string]float64{},
	}
	for _, p := range payments {
		report.Total += p.Amount
		report.Tips += p.Tip
		report.ByMethod[string(p.Method)] += p.Amount
		report.Daily[p.PaymentDate.Format("2006-01-02")] += p.Amount
	}
	return report, nil
}

type OrderStats struct {
	Count         int            `json:"count"`
	ByStatus      map[string]int `json:"by_status"`
	AverageAmount float64        `json:"average_amount"`
	ByDayOfWeek   map[string]int `json:"by_day_of_week"`
}

// OrderStatistics summarizes order volume in [start, end)
func (s *ReportService) OrderStatistics(actor models.Identity, start, end time.Time) (*OrderStats, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	orders, err := s.reports.OrdersInRange(start, end)
	if err != nil {
		return nil, err
	}

	stats := &OrderStats{
		ByStatus:    map[string]int{},
		ByDayOfWeek: map[string]int{},
	}
	var total float64
	for _, o := range orders {
		stats.Count++
		stats.ByStatus[string(o.Status)]++
		stats.ByDayOfWeek[o.CreatedAt.Weekday().String()]++
		total += o.Total()
	}
	if stats.Count > 0 {
		stats.AverageAmount = total / float64(stats.Count)
	}
	return stats, nil
}

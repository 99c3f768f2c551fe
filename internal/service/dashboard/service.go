package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/service/dashboard/models"
)

// Service сервис сводной статистики для панели персонала
type Service struct {
	visitorRepo  VisitorRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(visitorRepo VisitorRepository, logger Logger) *Service {
	return &Service{
		visitorRepo:  visitorRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Stats собирает сводку: распределения по статусам, целям и отделам,
// визиты за сегодня и за текущий месяц
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	statusCounts, err := s.visitorRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Stats: count by status: %v", err)
		return nil, fmt.Errorf("%w: Stats - count by status: %v", ErrInternal, err)
	}

	todayCount, err := s.visitorRepo.CountBetween(ctx, today, today)
	if err != nil {
		s.logger.Error("Stats: count today: %v", err)
		return nil, fmt.Errorf("%w: Stats - count today: %v", ErrInternal, err)
	}

	monthCount, err := s.visitorRepo.CountBetween(ctx, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("Stats: count month: %v", err)
		return nil, fmt.Errorf("%w: Stats - count month: %v", ErrInternal, err)
	}

	purposeCounts, err := s.visitorRepo.PurposeCounts(ctx)
	if err != nil {
		s.logger.Error("Stats: purpose counts: %v", err)
		return nil, fmt.Errorf("%w: Stats - purpose counts: %v", ErrInternal, err)
	}

	departmentCounts, err := s.visitorRepo.DepartmentCounts(ctx)
	if err != nil {
		s.logger.Error("Stats: department counts: %v", err)
		return nil, fmt.Errorf("%w: Stats - department counts: %v", ErrInternal, err)
	}

	resp := &models.StatsResponse{
		ByStatus:     make(map[string]int, len(statusCounts)),
		Today:        todayCount,
		ThisMonth:    monthCount,
		ByPurpose:    make(map[string]int, len(purposeCounts)),
		ByDepartment: make([]models.DepartmentStat, 0, len(departmentCounts)),
	}

	for status, count := range statusCounts {
		resp.ByStatus[string(status)] = count
		resp.Total += count
	}
	for purpose, count := range purposeCounts {
		resp.ByPurpose[string(purpose)] = count
	}
	for _, dc := range departmentCounts {
		resp.ByDepartment = append(resp.ByDepartment, models.DepartmentStat{
			DepartmentID:   dc.DepartmentID,
			DepartmentName: dc.DepartmentName,
			Count:          dc.Count,
		})
	}

	s.logger.Info("Stats: total=%d, today=%d, month=%d", resp.Total, resp.Today, resp.ThisMonth)

	return resp, nil
}

// Trends возвращает ежедневную динамику визитов за последние days дней
// Дни без визитов включаются с нулевым счетчиком
func (s *Service) Trends(ctx context.Context, days int) (*models.TrendsResponse, error) {
	if days <= 0 {
		days = 30
	}
	if days > 365 {
		return nil, fmt.Errorf("%w: days must be at most 365", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -(days - 1))

	counts, err := s.visitorRepo.DailyCounts(ctx, start, end)
	if err != nil {
		s.logger.Error("Trends: daily counts: %v", err)
		return nil, fmt.Errorf("%w: Trends - daily counts: %v", ErrInternal, err)
	}

	byDay := make(map[string]int, len(counts))
	for _, dc := range counts {
		byDay[dc.Date.Format("2006-01-02")] = dc.Count
	}

	resp := &models.TrendsResponse{
		Days:  days,
		Items: make([]models.TrendItem, 0, days),
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		resp.Items = append(resp.Items, models.TrendItem{
			Date:  d,
			Count: byDay[d.Format("2006-01-02")],
		})
	}

	return resp, nil
}

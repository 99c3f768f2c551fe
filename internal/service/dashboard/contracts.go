package dashboard

import (
	"context"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
)

// VisitorRepository агрегирующие запросы по посетителям
type VisitorRepository interface {
	CountByStatus(ctx context.Context) (map[domain.VisitorStatus]int, error)
	CountBetween(ctx context.Context, start, end time.Time) (int, error)
	PurposeCounts(ctx context.Context) (map[domain.VisitPurpose]int, error)
	DepartmentCounts(ctx context.Context) ([]domain.DepartmentCount, error)
	DailyCounts(ctx context.Context, start, end time.Time) ([]domain.DailyCount, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package visitors

import (
	"context"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/infra/mailqueue"
)

// VisitorRepository интерфейс репозитория посетителей
type VisitorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Visitor, error)
	List(ctx context.Context, filter domain.VisitorsFilter) ([]*domain.Visitor, error)
	Search(ctx context.Context, q string, limit int) ([]*domain.Visitor, error)
	Complete(ctx context.Context, id string, checkedOutAt time.Time) error
	UpdateStatus(ctx context.Context, id string, status domain.VisitorStatus) error
	Delete(ctx context.Context, id string) error
}

// DepartmentRepository интерфейс репозитория отделов
type DepartmentRepository interface {
	List(ctx context.Context) ([]*domain.Department, error)
}

// LogRepository журнал действий над посетителями
type LogRepository interface {
	Append(ctx context.Context, log *domain.VisitorLog) (*domain.VisitorLog, error)
	GetByVisitorID(ctx context.Context, visitorID string) ([]*domain.VisitorLog, error)
}

// MailEnqueuer постановка email-задач в очередь
type MailEnqueuer interface {
	Enqueue(ctx context.Context, task mailqueue.Task) error
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

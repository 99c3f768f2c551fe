package register_visitor

import (
	"context"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/infra/mailqueue"
)

// VisitorStorage интерфейс хранилища посетителей
type VisitorStorage interface {
	Create(ctx context.Context, visitor *domain.Visitor) (*domain.Visitor, error)
	GetActiveInSlot(ctx context.Context, visitDate time.Time, visitTime string) ([]*domain.Visitor, error)
}

// DepartmentStorage интерфейс хранилища отделов
type DepartmentStorage interface {
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
}

// LogStorage журнал действий над посетителями
type LogStorage interface {
	Append(ctx context.Context, log *domain.VisitorLog) (*domain.VisitorLog, error)
}

// MailEnqueuer постановка email-задач в очередь (fire-and-forget)
type MailEnqueuer interface {
	Enqueue(ctx context.Context, task mailqueue.Task) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

package verify_qr

import (
	"context"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
)

// VisitorStorage интерфейс хранилища посетителей
type VisitorStorage interface {
	GetByQRCode(ctx context.Context, qrCode string) (*domain.Visitor, error)
	MarkVerified(ctx context.Context, id string, checkedInAt time.Time) error
}

// LogStorage журнал действий над посетителями
type LogStorage interface {
	Append(ctx context.Context, log *domain.VisitorLog) (*domain.VisitorLog, error)
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

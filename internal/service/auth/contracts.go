package auth

import (
	"context"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
)

// UserRepository интерфейс репозитория учетных записей
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
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

package export

import (
	"context"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
)

// VisitorRepository интерфейс репозитория посетителей
type VisitorRepository interface {
	List(ctx context.Context, filter domain.VisitorsFilter) ([]*domain.Visitor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package bulk_upload

import (
	"context"

	"github.com/vmshq/VMS-VisitorService/internal/usecase/register_visitor"
)

// Registrar регистрирует одного посетителя (use case регистрации)
type Registrar interface {
	Execute(ctx context.Context, req *register_visitor.Request) (*register_visitor.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

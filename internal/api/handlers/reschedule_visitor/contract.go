package reschedule_visitor

import (
	"context"

	rescheduleVisitor "github.com/vmshq/VMS-VisitorService/internal/usecase/reschedule_visitor"
)

type RescheduleVisitorUseCase interface {
	Execute(ctx context.Context, req *rescheduleVisitor.Request) (*rescheduleVisitor.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

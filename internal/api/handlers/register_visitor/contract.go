package register_visitor

import (
	"context"

	registerVisitor "github.com/vmshq/VMS-VisitorService/internal/usecase/register_visitor"
)

type RegisterVisitorUseCase interface {
	Execute(ctx context.Context, req *registerVisitor.Request) (*registerVisitor.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

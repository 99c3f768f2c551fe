package cancel_visitor

import (
	"context"

	"github.com/vmshq/VMS-VisitorService/internal/service/visitors/models"
)

type VisitorsService interface {
	Cancel(ctx context.Context, id string) (*models.VisitorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

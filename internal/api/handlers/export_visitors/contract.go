package export_visitors

import (
	"context"

	"github.com/vmshq/VMS-VisitorService/internal/service/visitors/models"
)

type ExportService interface {
	Visitors(ctx context.Context, req *models.ListRequest) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

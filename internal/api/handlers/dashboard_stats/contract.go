package dashboard_stats

import (
	"context"

	"github.com/vmshq/VMS-VisitorService/internal/service/dashboard/models"
)

type DashboardService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

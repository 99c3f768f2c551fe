package dashboard_trends

import (
	"context"

	"github.com/vmshq/VMS-VisitorService/internal/service/dashboard/models"
)

type DashboardService interface {
	Trends(ctx context.Context, days int) (*models.TrendsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

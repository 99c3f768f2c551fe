package list_departments

import (
	"context"

	"github.com/vmshq/VMS-VisitorService/internal/service/visitors/models"
)

type VisitorsService interface {
	ListDepartments(ctx context.Context) ([]models.DepartmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

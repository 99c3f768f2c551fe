package bulk_upload

import (
	"context"

	bulkUpload "github.com/vmshq/VMS-VisitorService/internal/usecase/bulk_upload"
)

type BulkUploadUseCase interface {
	Execute(ctx context.Context, req *bulkUpload.Request) (*bulkUpload.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

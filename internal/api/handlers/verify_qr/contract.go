package verify_qr

import (
	"context"

	verifyQR "github.com/vmshq/VMS-VisitorService/internal/usecase/verify_qr"
)

type VerifyQRUseCase interface {
	Execute(ctx context.Context, req *verifyQR.Request) (*verifyQR.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package refresh_token

import (
	"context"

	"github.com/vmshq/VMS-VisitorService/internal/service/auth"
)

type AuthService interface {
	Refresh(ctx context.Context, claims *auth.Claims) (*auth.LoginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

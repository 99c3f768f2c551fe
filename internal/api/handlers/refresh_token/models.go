package refresh_token

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/service/auth"
)

// RefreshResponse HTTP response model
type RefreshResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *auth.LoginResponse) *RefreshResponse {
	return &RefreshResponse{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt.Format(time.RFC3339),
		Username:  resp.Username,
		Role:      resp.Role,
	}
}

package login

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/service/auth"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *auth.LoginResponse) *LoginResponse {
	return &LoginResponse{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt.Format(time.RFC3339),
		Username:  resp.Username,
		Role:      resp.Role,
	}
}

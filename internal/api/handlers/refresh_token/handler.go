package refresh_token

import (
	"errors"
	"net/http"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	"github.com/vmshq/VMS-VisitorService/internal/api/middleware"
	"github.com/vmshq/VMS-VisitorService/internal/service/auth"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgUserGone     = "учетная запись недействительна"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/refresh
// Маршрут защищен: claims кладет в контекст auth middleware
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Refresh(r.Context(), claims)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/refresh - User %s rejected", claims.Username)
			handlers.RespondUnauthorized(w, msgUserGone)

		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /auth/refresh - Failed: username=%s, error=%v", claims.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

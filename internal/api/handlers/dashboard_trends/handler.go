package dashboard_trends

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	"github.com/vmshq/VMS-VisitorService/internal/service/dashboard"
)

const msgInvalidDays = "некорректный параметр days"

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/trends?days=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgInvalidDays)
			return
		}
		days = parsed
	}

	result, err := h.service.Trends(r.Context(), days)
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidInput) {
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgInvalidDays)
			return
		}
		h.logger.Error("GET /dashboard/trends - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

package list_departments

import (
	"net/http"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
)

type Handler struct {
	service VisitorsService
	logger  Logger
}

func NewHandler(service VisitorsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/departments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListDepartments(r.Context())
	if err != nil {
		h.logger.Error("GET /departments - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

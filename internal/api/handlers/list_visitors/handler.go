package list_visitors

import (
	"errors"
	"net/http"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	"github.com/vmshq/VMS-VisitorService/internal/service/visitors"
)

const msgInvalidQueryParams = "некорректные параметры фильтрации"

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

// Handle GET /api/v1/visitors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseListRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /visitors - Invalid query params: %v", err)
		handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgInvalidQueryParams)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, visitors.ErrInvalidInput) {
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgInvalidQueryParams)
			return
		}
		h.logger.Error("GET /visitors - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

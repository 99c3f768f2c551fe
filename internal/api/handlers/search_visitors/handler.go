package search_visitors

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	"github.com/vmshq/VMS-VisitorService/internal/service/visitors"
)

const (
	msgMissingQuery = "параметр q обязателен"
	msgInvalidLimit = "некорректный параметр limit"
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

// Handle GET /api/v1/visitors/search?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgMissingQuery)
		return
	}

	limit := defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.Search(r.Context(), q, limit)
	if err != nil {
		if errors.Is(err, visitors.ErrInvalidInput) {
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgMissingQuery)
			return
		}
		h.logger.Error("GET /visitors/search - Failed: q=%q, error=%v", q, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

package get_visitor

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	"github.com/vmshq/VMS-VisitorService/internal/service/visitors"
)

const msgVisitorNotFound = "посетитель не найден"

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

// Handle GET /api/v1/visitors/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, visitors.ErrVisitorNotFound) {
			handlers.RespondNotFound(w, msgVisitorNotFound)
			return
		}
		h.logger.Error("GET /visitors/{id} - Failed: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

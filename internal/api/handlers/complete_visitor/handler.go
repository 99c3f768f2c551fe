package complete_visitor

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	"github.com/vmshq/VMS-VisitorService/internal/service/visitors"
)

const (
	msgVisitorNotFound = "посетитель не найден"
	msgNotCompletable  = "визит нельзя завершить в текущем статусе"
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

// Handle POST /api/v1/visitors/{id}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.Complete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, visitors.ErrVisitorNotFound):
			handlers.RespondNotFound(w, msgVisitorNotFound)

		case errors.Is(err, visitors.ErrNotCompletable):
			h.logger.Warn("POST /visitors/{id}/complete - Not completable: id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgNotCompletable)

		default:
			h.logger.Error("POST /visitors/{id}/complete - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visitors/{id}/complete - Visitor %s checked out", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

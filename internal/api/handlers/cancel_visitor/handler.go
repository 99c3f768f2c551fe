package cancel_visitor

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	"github.com/vmshq/VMS-VisitorService/internal/service/visitors"
)

const (
	msgVisitorNotFound = "посетитель не найден"
	msgNotCancellable  = "визит нельзя отменить в текущем статусе"
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

// Handle POST /api/v1/visitors/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, visitors.ErrVisitorNotFound):
			handlers.RespondNotFound(w, msgVisitorNotFound)

		case errors.Is(err, visitors.ErrNotCancellable):
			h.logger.Warn("POST /visitors/{id}/cancel - Not cancellable: id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgNotCancellable)

		default:
			h.logger.Error("POST /visitors/{id}/cancel - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visitors/{id}/cancel - Visit %s cancelled", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

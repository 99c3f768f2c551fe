package resend_email

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	"github.com/vmshq/VMS-VisitorService/internal/service/visitors"
)

const (
	msgVisitorNotFound = "посетитель не найден"
	msgNotActive       = "пропуск можно отправить только по активной записи"
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

// Handle POST /api/v1/visitors/{id}/resend-email
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.ResendEmail(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, visitors.ErrVisitorNotFound):
			handlers.RespondNotFound(w, msgVisitorNotFound)

		case errors.Is(err, visitors.ErrNotActive):
			h.logger.Warn("POST /visitors/{id}/resend-email - Not active: id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgNotActive)

		default:
			h.logger.Error("POST /visitors/{id}/resend-email - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visitors/{id}/resend-email - Mail queued for visitor %s", id)
	handlers.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	"github.com/vmshq/VMS-VisitorService/internal/domain"
	getAvailableSlots "github.com/vmshq/VMS-VisitorService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgInvalidSlot = "визиты возможны только по будням"
	msgMissingDate = "параметр date обязателен"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidSlot):
			h.logger.Warn("GET /slots - Not a weekday: date=%s", dateStr)
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindInvalidSlot, msgInvalidSlot)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingDate)

		default:
			h.logger.Error("GET /slots - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

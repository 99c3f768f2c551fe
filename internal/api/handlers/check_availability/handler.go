package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	"github.com/vmshq/VMS-VisitorService/internal/domain"
	checkAvailability "github.com/vmshq/VMS-VisitorService/internal/usecase/check_availability"
	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

const (
	msgInvalidDate  = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgInvalidTime  = "некорректный параметр time, ожидается HH:MM"
	msgInvalidSlot  = "недопустимый слот: визиты только по будням в рабочие часы, с начала часа"
	msgInvalidInput = "параметры date и time обязательны"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/availability?date=YYYY-MM-DD&time=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	timeStr := r.URL.Query().Get("time")

	if dateStr == "" || timeStr == "" {
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots/availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		h.logger.Warn("GET /slots/availability - Invalid time %q: %v", timeStr, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		Date:      date,
		StartTime: startTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidSlot):
			h.logger.Warn("GET /slots/availability - Invalid slot: date=%s, time=%s", dateStr, timeStr)
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindInvalidSlot, msgInvalidSlot)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgInvalidInput)

		default:
			h.logger.Error("GET /slots/availability - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

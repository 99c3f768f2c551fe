package reschedule_visitor

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	rescheduleVisitor "github.com/vmshq/VMS-VisitorService/internal/usecase/reschedule_visitor"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgVisitorNotFound    = "посетитель не найден"
	msgNotReschedulable   = "визит нельзя перенести в текущем статусе"
	msgSlotFull           = "в выбранном слоте не осталось мест"
	msgInvalidSlot        = "недопустимый слот: визиты только по будням в рабочие часы, с начала часа"
	msgTooLate            = "слишком поздно для записи на этот слот"
	msgSameSlot           = "новый слот совпадает с текущим"
)

type Handler struct {
	useCase RescheduleVisitorUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleVisitorUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/visitors/{id}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	visitorID := mux.Vars(r)["id"]

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visitors/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(visitorID)
	if err != nil {
		h.logger.Warn("POST /visitors/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleVisitor.ErrVisitorNotFound):
			handlers.RespondNotFound(w, msgVisitorNotFound)

		case errors.Is(err, rescheduleVisitor.ErrNotReschedulable):
			h.logger.Warn("POST /visitors/{id}/reschedule - Not reschedulable: id=%s", visitorID)
			handlers.RespondError(w, http.StatusConflict, msgNotReschedulable)

		case errors.Is(err, rescheduleVisitor.ErrSlotFull):
			h.logger.Warn("POST /visitors/{id}/reschedule - Slot full: id=%s, date=%s, time=%s",
				visitorID, req.NewDate, req.NewTime)
			handlers.RespondErrorKind(w, http.StatusConflict, handlers.KindCapacityExceeded, msgSlotFull)

		case errors.Is(err, rescheduleVisitor.ErrInvalidSlot):
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindInvalidSlot, msgInvalidSlot)

		case errors.Is(err, rescheduleVisitor.ErrTooLateToRegister):
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindInvalidSlot, msgTooLate)

		case errors.Is(err, rescheduleVisitor.ErrSameSlot):
			handlers.RespondBadRequest(w, msgSameSlot)

		case errors.Is(err, rescheduleVisitor.ErrInvalidInput):
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /visitors/{id}/reschedule - Failed: id=%s, error=%v", visitorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visitors/{id}/reschedule - Visitor %s moved to %s %s",
		result.ID, req.NewDate, req.NewTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

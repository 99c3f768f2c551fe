package register_visitor

import (
	"errors"
	"net/http"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	registerVisitor "github.com/vmshq/VMS-VisitorService/internal/usecase/register_visitor"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotFull           = "в выбранном слоте не осталось мест"
	msgInvalidSlot        = "недопустимый слот: визиты только по будням в рабочие часы, с начала часа"
	msgTooLate            = "слишком поздно для записи на этот слот"
	msgDepartmentNotFound = "отдел не найден"
	msgInvalidInput       = "некорректные данные посетителя"
)

type Handler struct {
	useCase RegisterVisitorUseCase
	logger  Logger
}

func NewHandler(useCase RegisterVisitorUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/visitors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterVisitorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visitors - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /visitors - Failed to parse request: %v", err)
		handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, registerVisitor.ErrSlotFull):
			h.logger.Warn("POST /visitors - Slot full: date=%s, time=%s", req.VisitDate, req.VisitTime)
			handlers.RespondErrorKind(w, http.StatusConflict, handlers.KindCapacityExceeded, msgSlotFull)

		case errors.Is(err, registerVisitor.ErrInvalidSlot):
			h.logger.Warn("POST /visitors - Invalid slot: date=%s, time=%s", req.VisitDate, req.VisitTime)
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindInvalidSlot, msgInvalidSlot)

		case errors.Is(err, registerVisitor.ErrTooLateToRegister):
			h.logger.Warn("POST /visitors - Too late: date=%s, time=%s", req.VisitDate, req.VisitTime)
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindInvalidSlot, msgTooLate)

		case errors.Is(err, registerVisitor.ErrDepartmentNotFound):
			h.logger.Warn("POST /visitors - Department not found: id=%v", req.DepartmentID)
			handlers.RespondNotFound(w, msgDepartmentNotFound)

		case errors.Is(err, registerVisitor.ErrInvalidInput):
			h.logger.Warn("POST /visitors - Invalid input: %v", err)
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgInvalidInput)

		default:
			h.logger.Error("POST /visitors - Failed to register visitor: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visitors - Visitor registered: id=%s, date=%s, time=%s",
		result.ID, req.VisitDate, req.VisitTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

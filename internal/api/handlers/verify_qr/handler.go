package verify_qr

import (
	"errors"
	"net/http"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	verifyQR "github.com/vmshq/VMS-VisitorService/internal/usecase/verify_qr"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgQRNotFound         = "пропуск не найден"
	msgQRExpired          = "срок действия пропуска истек"
	msgNotVisitDay        = "день визита еще не наступил"
	msgAlreadyVerified    = "пропуск уже использован"
	msgQRInactive         = "визит отменен или завершен"
	msgMissingQRCode      = "поле qrCode обязательно"
)

type Handler struct {
	useCase VerifyQRUseCase
	logger  Logger
}

func NewHandler(useCase VerifyQRUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/visitors/verify-qr
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyQRRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visitors/verify-qr - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &verifyQR.Request{QRCode: req.QRCode})
	if err != nil {
		switch {
		case errors.Is(err, verifyQR.ErrQRNotFound):
			h.logger.Warn("POST /visitors/verify-qr - Unknown code: %s", req.QRCode)
			handlers.RespondNotFound(w, msgQRNotFound)

		case errors.Is(err, verifyQR.ErrQRExpired):
			handlers.RespondError(w, http.StatusGone, msgQRExpired)

		case errors.Is(err, verifyQR.ErrNotVisitDay):
			handlers.RespondError(w, http.StatusConflict, msgNotVisitDay)

		case errors.Is(err, verifyQR.ErrAlreadyVerified):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyVerified)

		case errors.Is(err, verifyQR.ErrQRInactive):
			handlers.RespondError(w, http.StatusConflict, msgQRInactive)

		case errors.Is(err, verifyQR.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingQRCode)

		default:
			h.logger.Error("POST /visitors/verify-qr - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visitors/verify-qr - Visitor %s checked in", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

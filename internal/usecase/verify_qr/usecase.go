package verify_qr

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	visitorRepo "github.com/vmshq/VMS-VisitorService/internal/infra/storage/visitor"
)

// UseCase use case проверки QR пропуска на проходной
type UseCase struct {
	visitorStorage VisitorStorage
	logStorage     LogStorage
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(visitorStorage VisitorStorage, logStorage LogStorage, logger Logger) *UseCase {
	return &UseCase{
		visitorStorage: visitorStorage,
		logStorage:     logStorage,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute проверяет код пропуска и отмечает вход посетителя
// Пропуск одноразовый: повторное сканирование возвращает ErrAlreadyVerified.
// Пропуск действует только в день визита, до конца дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.QRCode == "" {
		return nil, fmt.Errorf("%w: qrCode is required", ErrInvalidInput)
	}

	visitor, err := uc.visitorStorage.GetByQRCode(ctx, req.QRCode)
	if err != nil {
		if errors.Is(err, visitorRepo.ErrVisitorNotFound) {
			uc.logger.Warn("VerifyQR: unknown code %s", req.QRCode)
			return nil, ErrQRNotFound
		}
		uc.logger.Error("VerifyQR: failed to get visitor by code: %v", err)
		return nil, fmt.Errorf("%w: failed to get visitor: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	switch visitor.Status {
	case domain.StatusVerified:
		uc.logger.Warn("VerifyQR: visitor %s already checked in", visitor.ID)
		return nil, ErrAlreadyVerified
	case domain.StatusCompleted, domain.StatusCancelled, domain.StatusExpired:
		uc.logger.Warn("VerifyQR: visitor %s is %s", visitor.ID, visitor.Status)
		return nil, ErrQRInactive
	}

	if visitor.IsQRExpired(now) {
		uc.logger.Warn("VerifyQR: code %s expired, visit date %s",
			req.QRCode, visitor.VisitDate.Format(domain.DateFormat))
		return nil, ErrQRExpired
	}

	if !visitor.IsVisitDay(now) {
		uc.logger.Warn("VerifyQR: code %s scanned before visit day %s",
			req.QRCode, visitor.VisitDate.Format(domain.DateFormat))
		return nil, ErrNotVisitDay
	}

	if err := uc.visitorStorage.MarkVerified(ctx, visitor.ID, now); err != nil {
		uc.logger.Error("VerifyQR: failed to mark verified: %v", err)
		return nil, fmt.Errorf("%w: failed to mark verified: %v", ErrInternal, err)
	}

	if _, err := uc.logStorage.Append(ctx, &domain.VisitorLog{
		VisitorID: visitor.ID,
		Action:    domain.ActionVerified,
		Notes:     "checked in at the gate",
	}); err != nil {
		uc.logger.Warn("VerifyQR: failed to append log for %s: %v", visitor.ID, err)
	}

	uc.logger.Info("VerifyQR: visitor %s checked in", visitor.ID)

	return &Response{
		ID:          visitor.ID,
		Name:        visitor.Name,
		Company:     visitor.Company,
		VisitDate:   visitor.VisitDate,
		VisitTime:   visitor.VisitTime,
		HostName:    visitor.HostName,
		Status:      string(domain.StatusVerified),
		CheckedInAt: now,
	}, nil
}

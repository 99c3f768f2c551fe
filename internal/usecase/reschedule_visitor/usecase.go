package reschedule_visitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/infra/mailqueue"
	visitorRepo "github.com/vmshq/VMS-VisitorService/internal/infra/storage/visitor"
	"github.com/vmshq/VMS-VisitorService/pkg/qrgen"
)

// UseCase use case переноса визита на другой слот
type UseCase struct {
	visitorStorage VisitorStorage
	logStorage     LogStorage
	mailQueue      MailEnqueuer
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	visitorStorage VisitorStorage,
	logStorage LogStorage,
	mailQueue MailEnqueuer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		visitorStorage: visitorStorage,
		logStorage:     logStorage,
		mailQueue:      mailQueue,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute переносит визит на новый слот
// Вместимость нового слота проверяется в сериализуемой транзакции,
// как при регистрации. Прежний пропуск аннулируется, генерируется новый
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleVisitor: id=%s, newDate=%s, newTime=%s",
		req.VisitorID, req.NewDate.Format(domain.DateFormat), req.NewTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleVisitor: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if err := validateSlot(req.NewDate, req.NewTime, now); err != nil {
		uc.logger.Warn("RescheduleVisitor: slot validation failed: %v", err)
		return nil, err
	}

	if err := validateNotice(req.NewDate, req.NewTime, now); err != nil {
		uc.logger.Warn("RescheduleVisitor: notice validation failed: %v", err)
		return nil, err
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		visitor, err := uc.visitorStorage.GetByID(txCtx, req.VisitorID)
		if err != nil {
			if errors.Is(err, visitorRepo.ErrVisitorNotFound) {
				uc.logger.Warn("RescheduleVisitor: visitor %s not found", req.VisitorID)
				return ErrVisitorNotFound
			}
			uc.logger.Error("RescheduleVisitor: failed to get visitor: %v", err)
			return fmt.Errorf("%w: failed to get visitor: %v", ErrInternal, err)
		}

		if !visitor.CanBeRescheduled() {
			uc.logger.Warn("RescheduleVisitor: visitor %s is %s, cannot reschedule", visitor.ID, visitor.Status)
			return ErrNotReschedulable
		}

		if isSameDay(visitor.VisitDate, req.NewDate) && visitor.VisitTime.String() == req.NewTime.String() {
			return ErrSameSlot
		}

		// Активные записи нового слота с блокировкой (FOR UPDATE)
		active, err := uc.visitorStorage.GetActiveInSlot(txCtx, req.NewDate, req.NewTime.String())
		if err != nil {
			uc.logger.Error("RescheduleVisitor: failed to get active visitors in slot: %v", err)
			return fmt.Errorf("%w: failed to get active visitors: %v", ErrInternal, err)
		}

		if len(active) >= domain.SlotCapacity {
			uc.logger.Warn("RescheduleVisitor: slot %s %s is full, %d/%d",
				req.NewDate.Format(domain.DateFormat), req.NewTime, len(active), domain.SlotCapacity)
			return ErrSlotFull
		}

		newQRCode := qrgen.NewCode()

		if err := uc.visitorStorage.Reschedule(
			txCtx,
			visitor.ID,
			req.NewDate,
			req.NewTime.String(),
			newQRCode,
			visitor.VisitDate,
			visitor.VisitTime.String(),
		); err != nil {
			uc.logger.Error("RescheduleVisitor: failed to reschedule: %v", err)
			return fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
		}

		if _, err := uc.logStorage.Append(txCtx, &domain.VisitorLog{
			VisitorID: visitor.ID,
			Action:    domain.ActionRescheduled,
			Notes: fmt.Sprintf("moved from %s %s to %s %s",
				visitor.VisitDate.Format(domain.DateFormat), visitor.VisitTime,
				req.NewDate.Format(domain.DateFormat), req.NewTime),
		}); err != nil {
			uc.logger.Error("RescheduleVisitor: failed to append log: %v", err)
			return fmt.Errorf("%w: failed to append log: %v", ErrInternal, err)
		}

		result = &Response{
			ID:                visitor.ID,
			Name:              visitor.Name,
			VisitDate:         req.NewDate,
			VisitTime:         req.NewTime,
			OriginalVisitDate: visitor.VisitDate,
			OriginalVisitTime: visitor.VisitTime,
			Status:            string(domain.StatusPending),
			QRCode:            newQRCode,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleVisitor: visitor %s moved, new qr=%s", result.ID, result.QRCode)

	// Письмо с новым пропуском - fire-and-forget
	if err := uc.mailQueue.Enqueue(ctx, mailqueue.Task{
		Kind:      mailqueue.KindReschedule,
		VisitorID: result.ID,
	}); err != nil {
		uc.logger.Error("RescheduleVisitor: failed to enqueue reschedule mail for %s: %v", result.ID, err)
	}

	return result, nil
}

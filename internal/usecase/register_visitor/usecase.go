package register_visitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/infra/mailqueue"
	departmentRepo "github.com/vmshq/VMS-VisitorService/internal/infra/storage/department"
	"github.com/vmshq/VMS-VisitorService/pkg/qrgen"
)

// UseCase use case регистрации посетителя
type UseCase struct {
	visitorStorage    VisitorStorage
	departmentStorage DepartmentStorage
	logStorage        LogStorage
	mailQueue         MailEnqueuer
	txManager         TransactionManager
	timeProvider      TimeProvider
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	visitorStorage VisitorStorage,
	departmentStorage DepartmentStorage,
	logStorage LogStorage,
	mailQueue MailEnqueuer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		visitorStorage:    visitorStorage,
		departmentStorage: departmentStorage,
		logStorage:        logStorage,
		mailQueue:         mailQueue,
		txManager:         txManager,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// Execute выполняет регистрацию посетителя
// Проверка вместимости слота и вставка выполняются в сериализуемой транзакции:
// строки слота блокируются FOR UPDATE, поэтому две конкурентные регистрации
// на последнее место не могут пройти обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RegisterVisitor: name=%s, email=%s, date=%s, time=%s",
		req.Name, req.Email, req.VisitDate.Format(domain.DateFormat), req.VisitTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterVisitor: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Валидация слота по правилам посещений
	if err := validateSlot(req.VisitDate, req.VisitTime, now); err != nil {
		uc.logger.Warn("RegisterVisitor: slot validation failed: %v", err)
		return nil, err
	}

	// 3. Проверка минимального уведомления
	if err := validateNotice(req.VisitDate, req.VisitTime, now); err != nil {
		uc.logger.Warn("RegisterVisitor: notice validation failed: %v", err)
		return nil, err
	}

	// 4. Проверка отдела (если указан)
	if req.DepartmentID != nil {
		if _, err := uc.departmentStorage.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, departmentRepo.ErrDepartmentNotFound) {
				uc.logger.Warn("RegisterVisitor: department id=%d not found", *req.DepartmentID)
				return nil, ErrDepartmentNotFound
			}
			uc.logger.Error("RegisterVisitor: failed to get department id=%d: %v", *req.DepartmentID, err)
			return nil, fmt.Errorf("%w: failed to get department: %v", ErrInternal, err)
		}
	}

	var result *domain.Visitor
	var remaining int

	// 5. Проверка вместимости и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные записи слота с блокировкой (FOR UPDATE)
		active, err := uc.visitorStorage.GetActiveInSlot(txCtx, req.VisitDate, req.VisitTime.String())
		if err != nil {
			uc.logger.Error("RegisterVisitor: failed to get active visitors in slot: %v", err)
			return fmt.Errorf("%w: failed to get active visitors: %v", ErrInternal, err)
		}

		// 5.2. Проверка вместимости
		if len(active) >= domain.SlotCapacity {
			uc.logger.Warn("RegisterVisitor: slot %s %s is full, %d/%d",
				req.VisitDate.Format(domain.DateFormat), req.VisitTime, len(active), domain.SlotCapacity)
			return ErrSlotFull
		}

		uc.logger.Info("RegisterVisitor: slot available, %d/%d spots taken", len(active), domain.SlotCapacity)

		// 5.3. Создание записи с уникальным кодом пропуска
		visitor := &domain.Visitor{
			ID:              uuid.NewString(),
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			Company:         req.Company,
			VisitorType:     domain.VisitorType(req.VisitorType),
			VisitorCategory: domain.VisitorCategory(req.VisitorCategory),
			Purpose:         domain.VisitPurpose(req.Purpose),
			DepartmentID:    req.DepartmentID,
			VisitDate:       req.VisitDate,
			VisitTime:       req.VisitTime,
			HostName:        req.HostName,
			HostEmail:       req.HostEmail,
			Status:          domain.StatusPending,
			QRCode:          qrgen.NewCode(),
			Notes:           req.Notes,
		}

		created, err := uc.visitorStorage.Create(txCtx, visitor)
		if err != nil {
			uc.logger.Error("RegisterVisitor: failed to create visitor: %v", err)
			return fmt.Errorf("%w: failed to create visitor: %v", ErrInternal, err)
		}

		// 5.4. Запись в журнал в той же транзакции
		if _, err := uc.logStorage.Append(txCtx, &domain.VisitorLog{
			VisitorID: created.ID,
			Action:    domain.ActionRegistered,
			Notes:     fmt.Sprintf("registered for %s %s", req.VisitDate.Format(domain.DateFormat), req.VisitTime),
		}); err != nil {
			uc.logger.Error("RegisterVisitor: failed to append log: %v", err)
			return fmt.Errorf("%w: failed to append log: %v", ErrInternal, err)
		}

		result = created
		remaining = domain.SlotCapacity - len(active) - 1
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RegisterVisitor: created visitor id=%s, qr=%s", result.ID, result.QRCode)

	// 6. Постановка письма в очередь - fire-and-forget:
	// сбой почтового конвейера не отменяет регистрацию
	if err := uc.mailQueue.Enqueue(ctx, mailqueue.Task{
		Kind:      mailqueue.KindConfirmation,
		VisitorID: result.ID,
	}); err != nil {
		uc.logger.Error("RegisterVisitor: failed to enqueue confirmation mail for %s: %v", result.ID, err)
	}

	return &Response{
		ID:        result.ID,
		Name:      result.Name,
		Email:     result.Email,
		VisitDate: result.VisitDate,
		VisitTime: result.VisitTime,
		Status:    string(result.Status),
		QRCode:    result.QRCode,
		Remaining: remaining,
		CreatedAt: result.CreatedAt,
	}, nil
}

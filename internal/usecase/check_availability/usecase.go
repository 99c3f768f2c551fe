package check_availability

import (
	"context"
	"fmt"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
)

// UseCase use case проверки доступности слота
type UseCase struct {
	visitorStorage VisitorStorage
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(visitorStorage VisitorStorage, logger Logger) *UseCase {
	return &UseCase{
		visitorStorage: visitorStorage,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет проверку доступности слота
// Проверка read-only, без блокировок: результат консультативный,
// гарантия вместимости обеспечивается транзакцией при регистрации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	if err := validateSlot(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CheckAvailability: slot validation failed: %v", err)
		return nil, err
	}

	booked, err := uc.visitorStorage.CountActiveInSlot(ctx, req.Date, req.StartTime.String())
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to count active visitors: %v", err)
		return nil, fmt.Errorf("%w: failed to count active visitors: %v", ErrInternal, err)
	}

	slot := domain.NewSlotAvailability(req.Date, req.StartTime, booked)

	uc.logger.Info("CheckAvailability: date=%s, time=%s, booked=%d/%d",
		req.Date.Format(domain.DateFormat), req.StartTime, slot.Booked, slot.Capacity)

	return &Response{
		VisitDate: slot.VisitDate,
		StartTime: slot.StartTime,
		Capacity:  slot.Capacity,
		Booked:    slot.Booked,
		Remaining: slot.Remaining,
		Available: !slot.IsFull(),
	}, nil
}

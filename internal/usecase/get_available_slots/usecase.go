package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// UseCase use case получения занятости всех слотов дня
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

// Execute возвращает занятость всех рабочих слотов на дату
// Один запрос с группировкой вместо запроса на каждый час
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsWeekday(req.Date) {
		uc.logger.Warn("GetAvailableSlots: %s is not a weekday", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: visits are allowed on weekdays only", ErrInvalidSlot)
	}

	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetAvailableSlots: %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: visit date is in the past", ErrInvalidSlot)
	}

	counts, err := uc.visitorStorage.SlotCounts(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get slot counts: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot counts: %v", ErrInternal, err)
	}

	hours := domain.BusinessHours()
	slots := make([]Slot, 0, len(hours))

	for _, hour := range hours {
		startTime := types.TimeString(fmt.Sprintf("%02d:00", hour))
		booked := counts[startTime.String()]
		sa := domain.NewSlotAvailability(req.Date, startTime, booked)

		slots = append(slots, Slot{
			StartTime: sa.StartTime,
			Capacity:  sa.Capacity,
			Booked:    sa.Booked,
			Remaining: sa.Remaining,
			Available: !sa.IsFull(),
		})
	}

	uc.logger.Info("GetAvailableSlots: date=%s, %d slots", req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		VisitDate: req.Date,
		Slots:     slots,
	}, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

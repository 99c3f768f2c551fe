package check_availability

import (
	"fmt"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlot проверяет слот по правилам посещений:
// будний день, начало часа, рабочие часы, не в прошлом
func validateSlot(req *Request, now time.Time) error {
	if !domain.IsWeekday(req.Date) {
		return fmt.Errorf("%w: visits are allowed on weekdays only", ErrInvalidSlot)
	}

	hour, err := req.StartTime.Hour()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	minute, err := req.StartTime.Minute()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	if minute != 0 {
		return fmt.Errorf("%w: slot must start at the top of the hour", ErrInvalidSlot)
	}

	if !domain.IsBusinessHour(hour) {
		return fmt.Errorf("%w: slot is outside business hours %02d:00-%02d:00",
			ErrInvalidSlot, domain.BusinessStartHour, domain.BusinessEndHour)
	}

	if isDateInPast(req.Date, now) {
		return fmt.Errorf("%w: visit date is in the past", ErrInvalidSlot)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

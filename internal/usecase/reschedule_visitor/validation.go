package reschedule_visitor

import (
	"fmt"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VisitorID == "" {
		return fmt.Errorf("%w: visitorID is required", ErrInvalidInput)
	}

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	if req.NewTime.IsZero() {
		return fmt.Errorf("%w: newTime is required", ErrInvalidInput)
	}
	if err := req.NewTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlot проверяет слот по правилам посещений
func validateSlot(visitDate time.Time, visitTime types.TimeString, now time.Time) error {
	if !domain.IsWeekday(visitDate) {
		return fmt.Errorf("%w: visits are allowed on weekdays only", ErrInvalidSlot)
	}

	hour, err := visitTime.Hour()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	minute, err := visitTime.Minute()
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

	if isDateInPast(visitDate, now) {
		return fmt.Errorf("%w: visit date is in the past", ErrInvalidSlot)
	}

	return nil
}

// validateNotice проверяет минимальное уведомление о визите
func validateNotice(visitDate time.Time, visitTime types.TimeString, now time.Time) error {
	if !isSameDay(visitDate, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(domain.MinBookingNoticeMinutes)
	if err != nil {
		return fmt.Errorf("%w: failed to calculate min allowed time: %v", ErrInternal, err)
	}

	if visitTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must register at least %d minutes in advance",
			ErrTooLateToRegister, domain.MinBookingNoticeMinutes)
	}

	return nil
}

func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

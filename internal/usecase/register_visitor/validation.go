package register_visitor

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	if !domain.ValidVisitorType(domain.VisitorType(req.VisitorType)) {
		return fmt.Errorf("%w: invalid visitor type %q", ErrInvalidInput, req.VisitorType)
	}

	if !domain.ValidVisitorCategory(domain.VisitorCategory(req.VisitorCategory)) {
		return fmt.Errorf("%w: invalid visitor category %q", ErrInvalidInput, req.VisitorCategory)
	}

	if !domain.ValidPurpose(domain.VisitPurpose(req.Purpose)) {
		return fmt.Errorf("%w: invalid visit purpose %q", ErrInvalidInput, req.Purpose)
	}

	if req.VisitDate.IsZero() {
		return fmt.Errorf("%w: visitDate is required", ErrInvalidInput)
	}

	if req.VisitTime.IsZero() {
		return fmt.Errorf("%w: visitTime is required", ErrInvalidInput)
	}
	if err := req.VisitTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid visitTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlot проверяет слот по правилам посещений:
// будний день, начало часа, рабочие часы, не в прошлом
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

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

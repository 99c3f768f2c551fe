package reschedule_visitor

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_visitor: invalid input data")

	// ErrVisitorNotFound возвращается, когда запись посетителя не найдена
	ErrVisitorNotFound = errors.New("reschedule_visitor: visitor not found")

	// ErrNotReschedulable возвращается для визита в конечном статусе
	ErrNotReschedulable = errors.New("reschedule_visitor: visit cannot be rescheduled")

	// ErrInvalidSlot возвращается для слота вне рабочих правил
	ErrInvalidSlot = errors.New("reschedule_visitor: invalid slot")

	// ErrSlotFull возвращается, когда в новом слоте не осталось мест
	ErrSlotFull = errors.New("reschedule_visitor: slot capacity exceeded")

	// ErrTooLateToRegister возвращается при нарушении минимального уведомления
	ErrTooLateToRegister = errors.New("reschedule_visitor: too late to register for this slot")

	// ErrSameSlot возвращается при переносе в тот же слот
	ErrSameSlot = errors.New("reschedule_visitor: new slot is the same as the current one")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_visitor: internal error")
)

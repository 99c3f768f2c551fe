package register_visitor

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_visitor: invalid input data")

	// ErrInvalidSlot возвращается для слота вне рабочих правил (выходной, нерабочий час, не с начала часа, прошлое)
	ErrInvalidSlot = errors.New("register_visitor: invalid slot")

	// ErrSlotFull возвращается, когда в слоте не осталось мест
	ErrSlotFull = errors.New("register_visitor: slot capacity exceeded")

	// ErrTooLateToRegister возвращается при нарушении минимального уведомления о визите
	ErrTooLateToRegister = errors.New("register_visitor: too late to register for this slot")

	// ErrDepartmentNotFound возвращается, когда указанный отдел не найден
	ErrDepartmentNotFound = errors.New("register_visitor: department not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_visitor: internal error")
)

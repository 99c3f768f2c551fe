package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInvalidSlot возвращается для слота вне рабочих правил (выходной, нерабочий час, не с начала часа)
	ErrInvalidSlot = errors.New("check_availability: invalid slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)

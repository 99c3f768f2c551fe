package visitors

import "errors"

var (
	// ErrVisitorNotFound возвращается, когда запись посетителя не найдена
	ErrVisitorNotFound = errors.New("visitors: visitor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("visitors: invalid input data")

	// ErrNotCompletable возвращается для визита в конечном статусе
	ErrNotCompletable = errors.New("visitors: visit cannot be completed")

	// ErrNotCancellable возвращается при отмене визита в конечном статусе
	ErrNotCancellable = errors.New("visitors: visit cannot be cancelled")

	// ErrNotActive возвращается при операции над неактивным визитом
	ErrNotActive = errors.New("visitors: visit is not active")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("visitors: internal error")
)

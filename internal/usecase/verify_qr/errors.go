package verify_qr

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("verify_qr: invalid input data")

	// ErrQRNotFound возвращается для неизвестного кода пропуска
	ErrQRNotFound = errors.New("verify_qr: qr code not found")

	// ErrQRExpired возвращается для пропуска с истекшим сроком (день визита прошел)
	ErrQRExpired = errors.New("verify_qr: qr code expired")

	// ErrNotVisitDay возвращается при попытке пройти раньше дня визита
	ErrNotVisitDay = errors.New("verify_qr: visit day has not come yet")

	// ErrAlreadyVerified возвращается для уже использованного пропуска
	ErrAlreadyVerified = errors.New("verify_qr: visitor already checked in")

	// ErrQRInactive возвращается для пропуска отмененного/завершенного визита
	ErrQRInactive = errors.New("verify_qr: visit is not active")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("verify_qr: internal error")
)

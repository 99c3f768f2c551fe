package auth

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInvalidCredentials возвращается при неверном логине или пароле
	// Намеренно не различает "нет пользователя" и "неверный пароль"
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается для просроченного или поддельного токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)

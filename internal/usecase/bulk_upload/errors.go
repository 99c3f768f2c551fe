package bulk_upload

import "errors"

var (
	// ErrInvalidFile возвращается для нечитаемого или пустого Excel файла
	ErrInvalidFile = errors.New("bulk_upload: invalid excel file")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("bulk_upload: internal error")
)

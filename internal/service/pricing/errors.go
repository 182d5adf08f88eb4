package pricing

import "errors"

var (
	// ErrInvalidInput возвращается при неизвестном типе события
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package composers

import "errors"

var (
	// ErrComposerNotFound возвращается, когда композер не найден
	ErrComposerNotFound = errors.New("composer not found")

	// ErrComposerLocked возвращается при попытке изменить композер после начала оплаты
	ErrComposerLocked = errors.New("composer is locked for payment")

	// ErrAccessDenied возвращается, когда композер принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

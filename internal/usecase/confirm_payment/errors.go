package confirm_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном событии шлюза
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrComposerNotFound возвращается, когда композер из события не найден
	ErrComposerNotFound = errors.New("confirm_payment: composer not found")

	// ErrNotInitiated возвращается, если оплата композера не начиналась
	ErrNotInitiated = errors.New("confirm_payment: payment was not initiated")

	// ErrSessionMismatch возвращается, если сессия события не совпадает с сессией композера
	ErrSessionMismatch = errors.New("confirm_payment: session does not match composer")

	// ErrSlotTaken возвращается, когда слот успел занять другой оплаченный композер
	ErrSlotTaken = errors.New("confirm_payment: slot already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)

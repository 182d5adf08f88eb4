package submit_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном ID композера
	ErrInvalidInput = errors.New("submit_payment: invalid input data")

	// ErrComposerNotFound возвращается, когда композер не найден
	ErrComposerNotFound = errors.New("submit_payment: composer not found")

	// ErrAccessDenied возвращается, когда композер принадлежит другому пользователю
	ErrAccessDenied = errors.New("submit_payment: access denied")

	// ErrAlreadyPaid возвращается при повторной отправке оплаченного композера
	ErrAlreadyPaid = errors.New("submit_payment: composer is already paid")

	// ErrIncomplete возвращается, если не выбраны тип события, дата или слот
	ErrIncomplete = errors.New("submit_payment: event type, date and time slot are required")

	// ErrDateNotSelectable возвращается, если дату больше нельзя выбрать
	ErrDateNotSelectable = errors.New("submit_payment: date is not available for booking")

	// ErrSlotTaken возвращается, когда слот уже занят оплаченным композером
	ErrSlotTaken = errors.New("submit_payment: slot already taken")

	// ErrExtraTimeNotEligible возвращается, если Extra Time выбран не для субботнего вечера
	ErrExtraTimeNotEligible = errors.New("submit_payment: extra time is only available after the saturday evening slot")

	// ErrPaymentUnavailable возвращается, если платёжный шлюз не настроен
	ErrPaymentUnavailable = errors.New("submit_payment: payment gateway is not configured")

	// ErrPaymentFailed возвращается, если шлюз не создал сессию
	ErrPaymentFailed = errors.New("submit_payment: payment gateway failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_payment: internal error")
)

package paymentgateway

import "errors"

var (
	// ErrNotConfigured возвращается, если URL платёжного шлюза не задан
	ErrNotConfigured = errors.New("paymentgateway client: gateway not configured")

	// ErrRejected возвращается, когда шлюз отклонил запрос (4xx)
	ErrRejected = errors.New("paymentgateway client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("paymentgateway client: invalid response")
)

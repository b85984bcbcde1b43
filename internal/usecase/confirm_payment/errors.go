package confirm_payment

import "errors"

var (
	// ErrInvalidEvent возвращается при некорректном событии платежа
	ErrInvalidEvent = errors.New("invalid payment event")

	// ErrInternal возвращается при внутренних ошибках
	// Webhook при этом всё равно подтверждается: процессор перешлёт событие сам
	ErrInternal = errors.New("usecase: internal error")
)

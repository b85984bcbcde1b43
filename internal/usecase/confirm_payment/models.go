package confirm_payment

// Event types понимаемые обработчиком события платёжного процессора
const (
	EventPaymentSucceeded = "payment.succeeded"
	EventPaymentFailed    = "payment.failed"
)

// PaymentEvent событие платёжного процессора (после проверки подписи)
type PaymentEvent struct {
	EventType        string `json:"eventType"`
	BookingID        int64  `json:"bookingId"`
	PaymentReference string `json:"paymentReference"`
	AmountCents      int64  `json:"amountCents,omitempty"`
	Currency         string `json:"currency,omitempty"`
}

// Outcome исход обработки события
// Любой исход подтверждается процессору кодом 200: at-least-once доставка
// означает, что дубликаты и устаревшие события - штатная ситуация
type Outcome string

const (
	// OutcomeConfirmed бронирование переведено pending -> confirmed этим событием
	OutcomeConfirmed Outcome = "confirmed"

	// OutcomeAlreadyConfirmed повторная доставка: бронирование уже подтверждено
	OutcomeAlreadyConfirmed Outcome = "already_confirmed"

	// OutcomeReferenceMismatch ссылка платежа не совпала с ожидаемой
	OutcomeReferenceMismatch Outcome = "reference_mismatch"

	// OutcomeBookingNotFound событие ссылается на несуществующее бронирование
	OutcomeBookingNotFound Outcome = "booking_not_found"

	// OutcomeIgnored событие не меняет состояние (payment.failed,
	// неизвестный тип события, бронирование в терминальном статусе)
	OutcomeIgnored Outcome = "ignored"
)

// Result результат обработки события платежа
type Result struct {
	Outcome   Outcome
	BookingID int64
}

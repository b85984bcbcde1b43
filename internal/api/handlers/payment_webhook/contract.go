package payment_webhook

import (
	"context"

	confirmPayment "github.com/m04kA/TSB-SchedulingService/internal/usecase/confirm_payment"
)

type ConfirmPaymentUseCase interface {
	HandleEvent(ctx context.Context, event confirmPayment.PaymentEvent) (*confirmPayment.Result, error)
}

// SignatureVerifier проверяет подпись сырого тела запроса
type SignatureVerifier interface {
	Verify(body []byte, signature string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package payment_webhook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/TSB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/TSB-SchedulingService/internal/api/webhooksig"
	confirmPayment "github.com/m04kA/TSB-SchedulingService/internal/usecase/confirm_payment"
)

const (
	msgInvalidSignature = "invalid signature"
)

// ackResponse единый ответ процессору: деталей обработки наружу не отдаём
type ackResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	useCase  ConfirmPaymentUseCase
	verifier SignatureVerifier
	logger   Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, verifier SignatureVerifier, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		verifier: verifier,
		logger:   logger,
	}
}

// Handle POST /api/v1/webhooks/payment
//
// Подпись проверяется по сырому телу ДО декодирования JSON.
// Неверная подпись - 401, сбой хранилища - 500 (процессор повторит доставку),
// все доменные исходы подтверждаются кодом 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("POST /webhooks/payment - Failed to read body: %v", err)
		handlers.RespondJSON(w, http.StatusOK, ackResponse{Status: "accepted"})
		return
	}

	signature := r.Header.Get(webhooksig.SignatureHeader)
	if !h.verifier.Verify(body, signature) {
		h.logger.Warn("POST /webhooks/payment - Invalid signature, remote_addr=%s", r.RemoteAddr)
		handlers.RespondUnauthorized(w, msgInvalidSignature)
		return
	}

	var event confirmPayment.PaymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		// Подпись верна, но тело нечитаемо - подтверждаем, повтор не поможет
		h.logger.Error("POST /webhooks/payment - Malformed event body: %v", err)
		handlers.RespondJSON(w, http.StatusOK, ackResponse{Status: "accepted"})
		return
	}

	result, err := h.useCase.HandleEvent(r.Context(), event)
	if err != nil {
		if errors.Is(err, confirmPayment.ErrInvalidEvent) {
			// Событие битое по содержанию - повтор не поможет, подтверждаем
			h.logger.Warn("POST /webhooks/payment - Invalid event: %v", err)
			handlers.RespondJSON(w, http.StatusOK, ackResponse{Status: "accepted"})
			return
		}
		// Сбой хранилища: отвечаем 500, процессор доставит событие повторно
		h.logger.Error("POST /webhooks/payment - Failed to handle event: booking_id=%d, error=%v",
			event.BookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /webhooks/payment - Event handled: booking_id=%d, type=%s, outcome=%s",
		result.BookingID, event.EventType, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, ackResponse{Status: "accepted"})
}

package payment_webhook

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TSB-SchedulingService/internal/api/webhooksig"
	confirmPayment "github.com/m04kA/TSB-SchedulingService/internal/usecase/confirm_payment"
)

type fakeUseCase struct {
	calls  int
	result *confirmPayment.Result
	err    error
}

func (f *fakeUseCase) HandleEvent(_ context.Context, _ confirmPayment.PaymentEvent) (*confirmPayment.Result, error) {
	f.calls++
	return f.result, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testSecret = "test-webhook-secret"

func doRequest(t *testing.T, uc *fakeUseCase, body []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, webhooksig.NewVerifier(testSecret), nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", bytes.NewReader(body))
	req.Header.Set(webhooksig.SignatureHeader, signature)

	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func validBody() []byte {
	return []byte(`{"eventType":"payment.succeeded","bookingId":42,"paymentReference":"ref-abc-123"}`)
}

func signed(body []byte) string {
	return webhooksig.NewVerifier(testSecret).Sign(body)
}

func TestHandle_ValidSignature(t *testing.T) {
	uc := &fakeUseCase{result: &confirmPayment.Result{Outcome: confirmPayment.OutcomeConfirmed, BookingID: 42}}

	body := validBody()
	rec := doRequest(t, uc, body, signed(body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.calls)
	assert.JSONEq(t, `{"status":"accepted"}`, rec.Body.String())
}

func TestHandle_InvalidSignatureRejectedBeforeDecoding(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, validBody(), "deadbeef")

	// Неверная подпись отсекается до какой-либо обработки события
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, uc.calls)
}

func TestHandle_MissingSignature(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, validBody(), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, uc.calls)
}

func TestHandle_SignedMalformedBodyAcked(t *testing.T) {
	uc := &fakeUseCase{}

	body := []byte(`{not json`)
	rec := doRequest(t, uc, body, signed(body))

	// Повторная доставка нечитаемого тела не поможет - подтверждаем
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, uc.calls)
}

func TestHandle_InvalidEventAcked(t *testing.T) {
	uc := &fakeUseCase{err: confirmPayment.ErrInvalidEvent}

	body := validBody()
	rec := doRequest(t, uc, body, signed(body))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_StorageFailureReturns500(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("db connection lost")}

	body := validBody()
	rec := doRequest(t, uc, body, signed(body))

	// 500 заставляет процессор повторить доставку
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandle_DomainOutcomesAllAcked(t *testing.T) {
	outcomes := []confirmPayment.Outcome{
		confirmPayment.OutcomeConfirmed,
		confirmPayment.OutcomeAlreadyConfirmed,
		confirmPayment.OutcomeReferenceMismatch,
		confirmPayment.OutcomeBookingNotFound,
		confirmPayment.OutcomeIgnored,
	}

	for _, outcome := range outcomes {
		t.Run(string(outcome), func(t *testing.T) {
			uc := &fakeUseCase{result: &confirmPayment.Result{Outcome: outcome, BookingID: 42}}

			body := validBody()
			rec := doRequest(t, uc, body, signed(body))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

package confirm_payment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/TSB-SchedulingService/internal/infra/storage/booking"
)

// fakeBookingRepo повторяет семантику условного UPDATE: переход выполняется
// только из pending, под мьютексом - как строка под блокировкой в Postgres
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[int64]*domain.Booking
}

func newFakeRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	m := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{bookings: m}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) ConfirmPending(_ context.Context, id int64, integrationID *string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[id]
	if !ok || b.Status != domain.StatusPending {
		return false, nil
	}

	b.Status = domain.StatusConfirmed
	b.PaymentStatus = domain.PaymentDepositPaid
	now := time.Now()
	b.ConfirmedAt = &now
	if integrationID != nil {
		b.CalendarIntegrationID = integrationID
	}
	return true, nil
}

func (f *fakeBookingRepo) get(id int64) domain.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.bookings[id]
}

type fakeCalendarSync struct {
	mu            sync.Mutex
	calls         int
	integrationID string
	err           error
}

func (f *fakeCalendarSync) CreateBooking(_ context.Context, _ int64, _ time.Time, _, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.integrationID, f.err
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeNotifier) SendBookingConfirmed(_ context.Context, _, _ int64, _ string, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:               42,
		ArtistID:         1,
		ClientName:       "Анна",
		ClientEmail:      "anna@example.com",
		BookingDate:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:        "14:00",
		DurationMinutes:  120,
		Status:           domain.StatusPending,
		PaymentStatus:    domain.PaymentPending,
		PaymentReference: "ref-abc-123",
	}
}

func successEvent() PaymentEvent {
	return PaymentEvent{
		EventType:        EventPaymentSucceeded,
		BookingID:        42,
		PaymentReference: "ref-abc-123",
	}
}

func TestHandleEvent_ConfirmsPendingBooking(t *testing.T) {
	repo := newFakeRepo(pendingBooking())
	calendar := &fakeCalendarSync{integrationID: "ext-777"}
	notifier := &fakeNotifier{}

	uc := NewUsecase(repo, calendar, notifier, nopLogger{})

	result, err := uc.HandleEvent(context.Background(), successEvent())
	require.NoError(t, err)
	assert.Equal(t, OutcomeConfirmed, result.Outcome)

	b := repo.get(42)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Equal(t, domain.PaymentDepositPaid, b.PaymentStatus)
	require.NotNil(t, b.CalendarIntegrationID)
	assert.Equal(t, "ext-777", *b.CalendarIntegrationID)
	assert.NotNil(t, b.ConfirmedAt)
	assert.Equal(t, 1, notifier.calls)
}

func TestHandleEvent_DuplicateDeliveryIsNoop(t *testing.T) {
	repo := newFakeRepo(pendingBooking())
	notifier := &fakeNotifier{}

	uc := NewUsecase(repo, nil, notifier, nopLogger{})

	first, err := uc.HandleEvent(context.Background(), successEvent())
	require.NoError(t, err)
	assert.Equal(t, OutcomeConfirmed, first.Outcome)

	second, err := uc.HandleEvent(context.Background(), successEvent())
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyConfirmed, second.Outcome)

	// Уведомление уходит только при реальном переходе
	assert.Equal(t, 1, notifier.calls)
}

func TestHandleEvent_ConcurrentDeliveriesConfirmOnce(t *testing.T) {
	repo := newFakeRepo(pendingBooking())
	notifier := &fakeNotifier{}

	uc := NewUsecase(repo, nil, notifier, nopLogger{})

	const deliveries = 20

	var wg sync.WaitGroup
	outcomes := make([]Outcome, deliveries)
	errs := make([]error, deliveries)

	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := uc.HandleEvent(context.Background(), successEvent())
			errs[i] = err
			if result != nil {
				outcomes[i] = result.Outcome
			}
		}(i)
	}
	wg.Wait()

	confirmed := 0
	for i, o := range outcomes {
		require.NoError(t, errs[i])
		switch o {
		case OutcomeConfirmed:
			confirmed++
		case OutcomeAlreadyConfirmed:
		default:
			t.Fatalf("unexpected outcome %q", o)
		}
	}

	// Ровно одна доставка выполняет переход, остальные - no-op
	assert.Equal(t, 1, confirmed)
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, domain.StatusConfirmed, repo.get(42).Status)
}

func TestHandleEvent_ReferenceMismatchIsNoop(t *testing.T) {
	repo := newFakeRepo(pendingBooking())
	calendar := &fakeCalendarSync{integrationID: "ext-777"}
	notifier := &fakeNotifier{}

	uc := NewUsecase(repo, calendar, notifier, nopLogger{})

	event := successEvent()
	event.PaymentReference = "ref-WRONG"

	result, err := uc.HandleEvent(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, OutcomeReferenceMismatch, result.Outcome)

	// Состояние не тронуто, интеграции не вызывались
	b := repo.get(42)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	assert.Equal(t, 0, calendar.calls)
	assert.Equal(t, 0, notifier.calls)
}

func TestHandleEvent_FailedEventLeavesBookingPending(t *testing.T) {
	repo := newFakeRepo(pendingBooking())

	uc := NewUsecase(repo, nil, nil, nopLogger{})

	event := successEvent()
	event.EventType = EventPaymentFailed

	result, err := uc.HandleEvent(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, result.Outcome)

	// Неуспешный платёж не переводит бронирование в отказ
	assert.Equal(t, domain.StatusPending, repo.get(42).Status)
}

func TestHandleEvent_UnknownBooking(t *testing.T) {
	uc := NewUsecase(newFakeRepo(), nil, nil, nopLogger{})

	result, err := uc.HandleEvent(context.Background(), successEvent())
	require.NoError(t, err)
	assert.Equal(t, OutcomeBookingNotFound, result.Outcome)
}

func TestHandleEvent_TerminalStatusIgnored(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusCancelled
	repo := newFakeRepo(b)

	uc := NewUsecase(repo, nil, nil, nopLogger{})

	result, err := uc.HandleEvent(context.Background(), successEvent())
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, result.Outcome)
	assert.Equal(t, domain.StatusCancelled, repo.get(42).Status)
}

func TestHandleEvent_CalendarDegradedStillConfirms(t *testing.T) {
	repo := newFakeRepo(pendingBooking())
	calendar := &fakeCalendarSync{err: errors.New("service unavailable")}

	uc := NewUsecase(repo, calendar, nil, nopLogger{})

	result, err := uc.HandleEvent(context.Background(), successEvent())
	require.NoError(t, err)
	assert.Equal(t, OutcomeConfirmed, result.Outcome)

	// Подтверждение важнее зеркала во внешнем календаре
	b := repo.get(42)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Nil(t, b.CalendarIntegrationID)
}

func TestHandleEvent_InvalidEvent(t *testing.T) {
	uc := NewUsecase(newFakeRepo(), nil, nil, nopLogger{})

	_, err := uc.HandleEvent(context.Background(), PaymentEvent{EventType: EventPaymentSucceeded})
	assert.ErrorIs(t, err, ErrInvalidEvent)
}

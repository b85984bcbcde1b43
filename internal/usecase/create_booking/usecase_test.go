package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// 2026-09-14 - понедельник
var testNow = time.Date(2026, 9, 14, 7, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = testNow
	b.UpdatedAt = testNow
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBookingRepo) ListActiveByArtistAndDateRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeAvailability struct {
	schedule domain.WeeklySchedule
}

func (f *fakeAvailability) GetWeek(_ context.Context, _ int64) (domain.WeeklySchedule, error) {
	return f.schedule, nil
}

// fakeTxManager исполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeTime struct{}

func (fakeTime) Now() time.Time { return testNow }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func openSchedule() domain.WeeklySchedule {
	s := make(domain.WeeklySchedule)
	for day := 0; day < 7; day++ {
		for hour := 8; hour < 20; hour++ {
			s.Set(day, hour, true)
		}
	}
	return s
}

func validRequest() Request {
	return Request{
		ArtistID:        1,
		ClientName:      "Анна",
		ClientEmail:     "anna@example.com",
		BookingDate:     "2026-09-15",
		StartTime:       "14:00",
		DurationMinutes: 120,
	}
}

func newTestUsecase(repo *fakeBookingRepo, schedule domain.WeeklySchedule) (*Usecase, *fakeTxManager) {
	tx := &fakeTxManager{}
	uc := NewUsecase(repo, &fakeAvailability{schedule: schedule}, tx, fakeTime{}, nopLogger{}, 8, 20)
	return uc, tx
}

func TestCreateBooking_CreatesPendingWithPaymentReference(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, tx := newTestUsecase(repo, openSchedule())

	resp, err := uc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentStatus)
	// Ожидаемая ссылка платежа генерируется на создании
	assert.NotEmpty(t, resp.PaymentReference)
	assert.Equal(t, 1, tx.calls)

	require.Len(t, repo.created, 1)
	assert.Equal(t, resp.PaymentReference, repo.created[0].PaymentReference)
}

func TestCreateBooking_UniquePaymentReferences(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, _ := newTestUsecase(repo, openSchedule())

	first, err := uc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.StartTime = "17:00"
	second, err := uc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.PaymentReference, second.PaymentReference)
}

func TestCreateBooking_RejectsOverlap(t *testing.T) {
	// Активный сеанс 13:00-15:00 во вторник
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{{
			ID:              9,
			ArtistID:        1,
			BookingDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			StartTime:       "13:00",
			DurationMinutes: 120,
			Status:          domain.StatusConfirmed,
		}},
	}
	uc, _ := newTestUsecase(repo, openSchedule())

	_, err := uc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeSlotBusy)
	assert.Empty(t, repo.created)
}

func TestCreateBooking_AllowsTouchingAppointments(t *testing.T) {
	// Сеанс заканчивается ровно в 14:00 - новый с 14:00 допустим
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{{
			ID:              9,
			ArtistID:        1,
			BookingDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			StartTime:       "12:00",
			DurationMinutes: 120,
			Status:          domain.StatusPending,
		}},
	}
	uc, _ := newTestUsecase(repo, openSchedule())

	_, err := uc.CreateBooking(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestCreateBooking_RejectsBlockedCell(t *testing.T) {
	schedule := openSchedule()
	// Вторник 15:00 заблокирован - сеанс 14:00-16:00 его задевает
	schedule.Set(1, 15, false)

	uc, _ := newTestUsecase(&fakeBookingRepo{}, schedule)

	_, err := uc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCreateBooking_RejectsOutsideWorkingHours(t *testing.T) {
	uc, _ := newTestUsecase(&fakeBookingRepo{}, openSchedule())

	req := validRequest()
	req.StartTime = "19:00" // 19:00 + 120 минут выходит за 20:00
	_, err := uc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCreateBooking_Validation(t *testing.T) {
	uc, _ := newTestUsecase(&fakeBookingRepo{}, openSchedule())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "empty name", mutate: func(r *Request) { r.ClientName = " " }},
		{name: "bad email", mutate: func(r *Request) { r.ClientEmail = "not-an-email" }},
		{name: "bad date", mutate: func(r *Request) { r.BookingDate = "15.09.2026" }},
		{name: "bad time", mutate: func(r *Request) { r.StartTime = "2pm" }},
		{name: "duration too short", mutate: func(r *Request) { r.DurationMinutes = 15 }},
		{name: "duration too long", mutate: func(r *Request) { r.DurationMinutes = 600 }},
		{name: "past booking", mutate: func(r *Request) { r.BookingDate = "2026-09-13" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := uc.CreateBooking(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

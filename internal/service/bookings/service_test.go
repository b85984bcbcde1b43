package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/TSB-SchedulingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
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
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancelledAt = &now
	b.CancellationReason = &reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:               7,
		ArtistID:         1,
		ClientName:       "Анна",
		ClientEmail:      "anna@example.com",
		BookingDate:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:        "14:00",
		DurationMinutes:  120,
		Status:           domain.StatusConfirmed,
		PaymentStatus:    domain.PaymentDepositPaid,
		PaymentReference: "ref-abc-123",
	}
}

func TestGetByID_ReturnsDTO(t *testing.T) {
	svc := NewService(newFakeRepo(confirmedBooking()), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-09-15", resp.BookingDate)
	assert.Equal(t, "14:00", resp.StartTime)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "deposit_paid", resp.PaymentStatus)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ActiveBooking(t *testing.T) {
	b := confirmedBooking()
	svc := NewService(newFakeRepo(b), nopLogger{})

	err := svc.Cancel(context.Background(), 7, "клиент попросил перенос")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, b.Status)
	require.NotNil(t, b.CancellationReason)
	assert.Equal(t, "клиент попросил перенос", *b.CancellationReason)
	assert.NotNil(t, b.CancelledAt)
}

func TestCancel_TerminalStatusRejected(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{name: "completed", status: domain.StatusCompleted},
		{name: "cancelled", status: domain.StatusCancelled},
		{name: "rejected", status: domain.StatusRejected},
		{name: "no_show", status: domain.StatusNoShow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := confirmedBooking()
			b.Status = tt.status
			svc := NewService(newFakeRepo(b), nopLogger{})

			err := svc.Cancel(context.Background(), 7, "x")
			assert.ErrorIs(t, err, ErrCannotCancel)
			assert.Equal(t, tt.status, b.Status)
		})
	}
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	err := svc.Cancel(context.Background(), 99, "x")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/TSB-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/TSB-SchedulingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListActiveByArtistAndDateRange(_ context.Context, artistID int64, _, _ time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.ArtistID == artistID && b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Reschedule(_ context.Context, artistID, id int64, newDate time.Time, newStart types.TimeString, durationMinutes int) error {
	for _, b := range f.bookings {
		if b.ID == id && b.ArtistID == artistID {
			b.BookingDate = newDate
			b.StartTime = newStart
			b.DurationMinutes = durationMinutes
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func tuesday(h, m int) time.Time {
	return time.Date(2026, 9, 15, h, m, 0, 0, time.UTC)
}

func booking(id int64, status domain.BookingStatus, start types.TimeString, minutes int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		ArtistID:        1,
		ClientName:      "Анна",
		BookingDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       start,
		DurationMinutes: minutes,
		Status:          status,
	}
}

func TestListEvents_OnlyActiveBookings(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(1, domain.StatusPending, "10:00", 60),
		booking(2, domain.StatusConfirmed, "12:00", 60),
		booking(3, domain.StatusCancelled, "14:00", 60),
		booking(4, domain.StatusCompleted, "16:00", 60),
	}}
	svc := NewService(repo, nopLogger{})

	events, err := svc.ListEvents(context.Background(), 1, tuesday(0, 0), tuesday(23, 0))
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, int64(1), events[0].BookingID)
	assert.Equal(t, int64(2), events[1].BookingID)
}

func TestListEvents_InvalidRange(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.ListEvents(context.Background(), 1, tuesday(12, 0), tuesday(10, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCheckOverlap_HalfOpenIntervals(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(1, domain.StatusConfirmed, "10:00", 120), // 10:00-12:00
	}}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "inside", start: tuesday(10, 30), end: tuesday(11, 30), want: true},
		{name: "head overlap", start: tuesday(9, 0), end: tuesday(10, 30), want: true},
		{name: "tail overlap", start: tuesday(11, 30), end: tuesday(13, 0), want: true},
		// Совпадающие границы пересечением не считаются
		{name: "touching end", start: tuesday(12, 0), end: tuesday(13, 0), want: false},
		{name: "touching start", start: tuesday(9, 0), end: tuesday(10, 0), want: false},
		{name: "disjoint", start: tuesday(14, 0), end: tuesday(15, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			busy, err := svc.CheckOverlap(ctx, 1, 0, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, busy)
		})
	}
}

func TestCheckOverlap_ExcludesOwnBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(1, domain.StatusConfirmed, "10:00", 120),
	}}
	svc := NewService(repo, nopLogger{})

	// Сеанс не конфликтует сам с собой при переносе
	busy, err := svc.CheckOverlap(context.Background(), 1, 1, tuesday(10, 30), tuesday(11, 30))
	require.NoError(t, err)
	assert.False(t, busy)
}

func TestReschedule_MovesBooking(t *testing.T) {
	b := booking(1, domain.StatusConfirmed, "10:00", 120)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{b}}
	svc := NewService(repo, nopLogger{})

	err := svc.Reschedule(context.Background(), 1, 1, tuesday(15, 0), tuesday(16, 30))
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("15:00"), b.StartTime)
	assert.Equal(t, 90, b.DurationMinutes)
}

func TestReschedule_RejectsBusySlot(t *testing.T) {
	moved := booking(1, domain.StatusConfirmed, "10:00", 60)
	other := booking(2, domain.StatusPending, "14:00", 120) // 14:00-16:00
	repo := &fakeBookingRepo{bookings: []*domain.Booking{moved, other}}
	svc := NewService(repo, nopLogger{})

	err := svc.Reschedule(context.Background(), 1, 1, tuesday(15, 0), tuesday(16, 0))
	assert.ErrorIs(t, err, ErrTimeSlotBusy)

	// Бронирование осталось на месте
	assert.Equal(t, types.TimeString("10:00"), moved.StartTime)
}

func TestReschedule_AllowsTouchingSlot(t *testing.T) {
	moved := booking(1, domain.StatusConfirmed, "10:00", 60)
	other := booking(2, domain.StatusPending, "14:00", 120) // 14:00-16:00
	repo := &fakeBookingRepo{bookings: []*domain.Booking{moved, other}}
	svc := NewService(repo, nopLogger{})

	// Новый интервал начинается ровно в конце чужого сеанса
	err := svc.Reschedule(context.Background(), 1, 1, tuesday(16, 0), tuesday(17, 0))
	assert.NoError(t, err)
}

func TestReschedule_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	err := svc.Reschedule(context.Background(), 1, 99, tuesday(15, 0), tuesday(16, 0))
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestReschedule_InvalidInterval(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	err := svc.Reschedule(context.Background(), 1, 1, tuesday(15, 0), tuesday(15, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

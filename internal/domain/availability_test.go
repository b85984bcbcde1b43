package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeeklySchedule_DefaultDeny(t *testing.T) {
	schedule := make(WeeklySchedule)

	// Отсутствующая ячейка недоступна
	assert.False(t, schedule.IsAvailable(0, 10))

	schedule.Set(0, 10, true)
	assert.True(t, schedule.IsAvailable(0, 10))

	schedule.Set(0, 10, false)
	assert.False(t, schedule.IsAvailable(0, 10))
}

func TestWeeklySchedule_Copy(t *testing.T) {
	original := make(WeeklySchedule)
	original.Set(1, 12, true)

	cp := original.Copy()
	cp.Set(1, 12, false)
	cp.Set(2, 14, true)

	// Копия не алиасит оригинал
	assert.True(t, original.IsAvailable(1, 12))
	assert.False(t, original.IsAvailable(2, 14))
}

func TestDayHourFromTime(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		wantDay  int
		wantHour int
	}{
		// 2026-09-14 - понедельник
		{name: "monday", input: time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC), wantDay: 0, wantHour: 9},
		{name: "wednesday", input: time.Date(2026, 9, 16, 14, 30, 0, 0, time.UTC), wantDay: 2, wantHour: 14},
		{name: "sunday", input: time.Date(2026, 9, 20, 20, 0, 0, 0, time.UTC), wantDay: 6, wantHour: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, hour := DayHourFromTime(tt.input)
			assert.Equal(t, tt.wantDay, day)
			assert.Equal(t, tt.wantHour, hour)
		})
	}
}

func TestValidSlot(t *testing.T) {
	assert.True(t, ValidSlot(0, 8, 8, 20))
	assert.True(t, ValidSlot(6, 19, 8, 20))
	assert.False(t, ValidSlot(7, 10, 8, 20))
	assert.False(t, ValidSlot(-1, 10, 8, 20))
	assert.False(t, ValidSlot(0, 20, 8, 20)) // hourEnd не включается
	assert.False(t, ValidSlot(0, 7, 8, 20))
}

func TestAppointment_Overlaps(t *testing.T) {
	appt := &Appointment{
		Start: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
	}

	day := func(h, m int) time.Time {
		return time.Date(2026, 9, 15, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "full overlap", start: day(10, 0), end: day(12, 0), want: true},
		{name: "partial head", start: day(9, 0), end: day(10, 30), want: true},
		{name: "partial tail", start: day(11, 30), end: day(13, 0), want: true},
		{name: "contained", start: day(10, 30), end: day(11, 0), want: true},
		{name: "contains", start: day(9, 0), end: day(13, 0), want: true},
		// Соприкасающиеся границы пересечением не считаются
		{name: "touching end", start: day(12, 0), end: day(13, 0), want: false},
		{name: "touching start", start: day(9, 0), end: day(10, 0), want: false},
		{name: "before", start: day(8, 0), end: day(9, 0), want: false},
		{name: "after", start: day(13, 0), end: day(14, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appt.Overlaps(tt.start, tt.end))
		})
	}
}

func TestNewAppointmentFromBooking(t *testing.T) {
	booking := &Booking{
		ID:              7,
		ArtistID:        1,
		ClientName:      "Анна",
		BookingDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		DurationMinutes: 90,
		Status:          StatusPending,
	}

	appt := NewAppointmentFromBooking(booking)
	assert.NotNil(t, appt)
	assert.Equal(t, time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC), appt.Start)
	assert.Equal(t, time.Date(2026, 9, 15, 15, 30, 0, 0, time.UTC), appt.End)

	// Неактивное бронирование в календарь не проецируется
	booking.Status = StatusCancelled
	assert.Nil(t, NewAppointmentFromBooking(booking))

	booking.Status = StatusConfirmed
	assert.NotNil(t, NewAppointmentFromBooking(booking))
}

package domain

import "time"

// Appointment календарная проекция активного бронирования
// Существует в календаре тогда и только тогда, когда бронирование pending или confirmed
type Appointment struct {
	ID          int64
	BookingID   int64
	ArtistID    int64
	Start       time.Time
	End         time.Time
	ClientName  string
	ClientEmail string
	Status      BookingStatus
}

// NewAppointmentFromBooking проецирует активное бронирование в календарное событие
// Для неактивного бронирования возвращает nil - read model фильтрует, а не зеркалит
func NewAppointmentFromBooking(b *Booking) *Appointment {
	if b == nil || !b.IsActive() {
		return nil
	}
	return &Appointment{
		ID:          b.ID,
		BookingID:   b.ID,
		ArtistID:    b.ArtistID,
		Start:       b.StartAt(),
		End:         b.EndAt(),
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		Status:      b.Status,
	}
}

// Overlaps проверяет пересечение с полуинтервалом [start, end)
// Совпадающие границы пересечением не считаются
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.Start.Before(end) && a.End.After(start)
}

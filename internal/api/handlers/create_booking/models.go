package create_booking

import (
	createBooking "github.com/m04kA/TSB-SchedulingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ArtistID        int64   `json:"artistId"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	BookingDate     string  `json:"bookingDate"` // "2026-09-15"
	StartTime       string  `json:"startTime"`   // "14:00"
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Парсинг даты и времени происходит в use case вместе с остальной валидацией
func (r *CreateBookingRequest) ToUseCaseRequest() createBooking.Request {
	return createBooking.Request{
		ArtistID:        r.ArtistID,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		BookingDate:     r.BookingDate,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}
}

package models

import (
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	ArtistID        int64  `json:"artistId"`
	ClientName      string `json:"clientName"`
	ClientEmail     string `json:"clientEmail"`
	BookingDate     string `json:"bookingDate"` // "2026-09-15"
	StartTime       string `json:"startTime"`   // "14:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"paymentStatus"`

	CalendarIntegrationID *string `json:"calendarIntegrationId,omitempty"`
	Notes                 *string `json:"notes,omitempty"`

	ConfirmedAt        *string `json:"confirmedAt,omitempty"` // ISO 8601
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601
	CancellationReason *string `json:"cancellationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainBooking конвертирует domain модель в DTO
// Ожидаемая ссылка платежа наружу не отдаётся - она сверяется только с событиями процессора
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                    b.ID,
		ArtistID:              b.ArtistID,
		ClientName:            b.ClientName,
		ClientEmail:           b.ClientEmail,
		BookingDate:           b.BookingDate.Format(domain.DateFormat),
		StartTime:             b.StartTime.String(),
		DurationMinutes:       b.DurationMinutes,
		Status:                string(b.Status),
		PaymentStatus:         string(b.PaymentStatus),
		CalendarIntegrationID: b.CalendarIntegrationID,
		Notes:                 b.Notes,
		CancellationReason:    b.CancellationReason,
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}

	if b.ConfirmedAt != nil {
		confirmedStr := b.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &confirmedStr
	}
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

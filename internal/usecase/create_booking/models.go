package create_booking

import (
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	"github.com/m04kA/TSB-SchedulingService/pkg/types"
)

// Request запрос на создание бронирования
type Request struct {
	ArtistID        int64
	ClientName      string
	ClientEmail     string
	BookingDate     string // "2026-09-15"
	StartTime       string // "14:00"
	DurationMinutes int
	Notes           *string
}

// Response ответ с созданным бронированием
// PaymentReference отдаётся только здесь: клиент передаёт её платёжному
// процессору, по ней же сверяются входящие webhook-события
type Response struct {
	ID               int64     `json:"id"`
	ArtistID         int64     `json:"artistId"`
	ClientName       string    `json:"clientName"`
	ClientEmail      string    `json:"clientEmail"`
	BookingDate      string    `json:"bookingDate"`
	StartTime        string    `json:"startTime"`
	DurationMinutes  int       `json:"durationMinutes"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"paymentStatus"`
	PaymentReference string    `json:"paymentReference"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// parsedRequest разобранные и провалидированные входные данные
type parsedRequest struct {
	bookingDate time.Time
	startTime   types.TimeString
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:               b.ID,
		ArtistID:         b.ArtistID,
		ClientName:       b.ClientName,
		ClientEmail:      b.ClientEmail,
		BookingDate:      b.BookingDate.Format(domain.DateFormat),
		StartTime:        b.StartTime.String(),
		DurationMinutes:  b.DurationMinutes,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		PaymentReference: b.PaymentReference,
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
	}
}

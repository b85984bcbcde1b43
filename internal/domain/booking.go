package domain

import (
	"time"

	"github.com/m04kA/TSB-SchedulingService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

// PaymentStatus represents the payment progress of a booking
type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentDepositPaid PaymentStatus = "deposit_paid"
	PaymentCompleted   PaymentStatus = "completed"
)

// Booking represents a tattoo session reservation
// Записи никогда не удаляются физически - статус единственный признак жизненного цикла
type Booking struct {
	ID              int64
	ArtistID        int64
	ClientName      string
	ClientEmail     string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus
	PaymentStatus   PaymentStatus

	// PaymentReference ожидаемая ссылка платежа; сверяется с событиями процессора
	PaymentReference string

	// CalendarIntegrationID ID записи во внешнем календаре (если создана)
	CalendarIntegrationID *string

	Notes *string

	ConfirmedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies calendar time
// Активны только pending и confirmed - ровно они видны в календаре
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// StartAt возвращает момент начала сеанса (дата + время слота)
func (b *Booking) StartAt() time.Time {
	return time.Date(
		b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		b.StartTime.Hour(), b.StartTime.Minute(), 0, 0,
		b.BookingDate.Location(),
	)
}

// EndAt возвращает момент окончания сеанса
func (b *Booking) EndAt() time.Time {
	return b.StartAt().Add(time.Duration(b.DurationMinutes) * time.Minute)
}

package confirm_payment

import (
	"context"
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// ConfirmPending атомарный условный переход pending -> confirmed
	// Возвращает false, если строка уже не pending
	ConfirmPending(ctx context.Context, id int64, integrationID *string) (bool, error)
}

// CalendarSync интерфейс внешнего календарного сервиса (best-effort)
type CalendarSync interface {
	CreateBooking(ctx context.Context, artistID int64, startTime time.Time, clientName, clientEmail string) (string, error)
}

// Notifier интерфейс сервиса уведомлений (best-effort)
type Notifier interface {
	SendBookingConfirmed(ctx context.Context, artistID, bookingID int64, clientName string, startTime time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

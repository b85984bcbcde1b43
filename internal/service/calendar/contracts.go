package calendar

import (
	"context"
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	"github.com/m04kA/TSB-SchedulingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActiveByArtistAndDateRange(ctx context.Context, artistID int64, from, to time.Time) ([]*domain.Booking, error)
	Reschedule(ctx context.Context, artistID, id int64, newDate time.Time, newStart types.TimeString, durationMinutes int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

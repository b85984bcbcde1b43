package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListActiveByArtistAndDateRange(ctx context.Context, artistID int64, from, to time.Time) ([]*domain.Booking, error)
}

// AvailabilityStore интерфейс сетки доступности
type AvailabilityStore interface {
	GetWeek(ctx context.Context, artistID int64) (domain.WeeklySchedule, error)
}

// TransactionManager интерфейс менеджера транзакций
// Создание выполняется в serializable транзакции с блокировкой строк дня
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

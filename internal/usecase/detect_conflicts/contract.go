package detect_conflicts

import (
	"context"
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// AvailabilityStore интерфейс сетки доступности
type AvailabilityStore interface {
	GetWeek(ctx context.Context, artistID int64) (domain.WeeklySchedule, error)
}

// CalendarSource интерфейс календарного read model
type CalendarSource interface {
	ListEvents(ctx context.Context, artistID int64, from, to time.Time) ([]*domain.Appointment, error)
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

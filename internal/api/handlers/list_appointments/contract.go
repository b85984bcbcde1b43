package list_appointments

import (
	"context"
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

type CalendarService interface {
	ListEvents(ctx context.Context, artistID int64, from, to time.Time) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_availability

import (
	"context"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

type AvailabilityService interface {
	GetWeek(ctx context.Context, artistID int64) (domain.WeeklySchedule, error)
	HourStart() int
	HourEnd() int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

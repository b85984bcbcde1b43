package reschedule_appointment

import (
	"context"
	"time"

	detectConflicts "github.com/m04kA/TSB-SchedulingService/internal/usecase/detect_conflicts"
)

type CalendarService interface {
	Reschedule(ctx context.Context, artistID, bookingID int64, newStart, newEnd time.Time) error
}

// ConflictDetector пересчитывается после переноса: сеанс мог уехать
// из конфликтной ячейки или попасть в новую
type ConflictDetector interface {
	Recompute(ctx context.Context, artistID int64) (*detectConflicts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

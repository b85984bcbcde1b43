package apply_template

import (
	"context"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	detectConflicts "github.com/m04kA/TSB-SchedulingService/internal/usecase/detect_conflicts"
)

type AvailabilityService interface {
	ApplyTemplate(ctx context.Context, artistID, templateID int64) (domain.WeeklySchedule, error)
}

// ConflictDetector пересчитывается после применения: полная замена сетки
// может как создать конфликты, так и снять старые
type ConflictDetector interface {
	Recompute(ctx context.Context, artistID int64) (*detectConflicts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

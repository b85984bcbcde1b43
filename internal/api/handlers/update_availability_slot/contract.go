package update_availability_slot

import (
	"context"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	detectConflicts "github.com/m04kA/TSB-SchedulingService/internal/usecase/detect_conflicts"
)

type AvailabilityService interface {
	ToggleSlot(ctx context.Context, artistID int64, day, hour int, mode domain.PaintMode) error
}

// ConflictDetector живой список конфликтов, обновляемый при правках сетки
type ConflictDetector interface {
	Recompute(ctx context.Context, artistID int64) (*detectConflicts.Response, error)
	Current(ctx context.Context, artistID int64) (*detectConflicts.Response, error)
	MarkSlotAvailable(artistID int64, day, hour int) int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

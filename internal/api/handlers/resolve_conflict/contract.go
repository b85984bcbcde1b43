package resolve_conflict

import (
	"context"
)

type AvailabilityService interface {
	SetSlot(ctx context.Context, artistID int64, day, hour int, isAvailable bool) error
}

type ConflictDetector interface {
	MarkSlotAvailable(artistID int64, day, hour int) int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

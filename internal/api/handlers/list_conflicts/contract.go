package list_conflicts

import (
	"context"

	detectConflicts "github.com/m04kA/TSB-SchedulingService/internal/usecase/detect_conflicts"
)

type ConflictDetector interface {
	Current(ctx context.Context, artistID int64) (*detectConflicts.Response, error)
	Recompute(ctx context.Context, artistID int64) (*detectConflicts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

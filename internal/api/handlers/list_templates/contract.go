package list_templates

import (
	"context"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

type AvailabilityService interface {
	ListTemplates(ctx context.Context, artistID int64) ([]*domain.AvailabilityTemplate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

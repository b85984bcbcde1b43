package create_template

import (
	"context"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

type AvailabilityService interface {
	CreateTemplate(ctx context.Context, artistID int64, name string) (*domain.AvailabilityTemplate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

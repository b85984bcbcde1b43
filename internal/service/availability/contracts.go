package availability

import (
	"context"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория недельной сетки
type AvailabilityRepository interface {
	GetWeek(ctx context.Context, artistID int64) (domain.WeeklySchedule, error)
	SetSlot(ctx context.Context, artistID int64, day, hour int, isAvailable bool) error
	ReplaceAll(ctx context.Context, artistID int64, schedule domain.WeeklySchedule) error
}

// TemplateRepository интерфейс репозитория шаблонов
type TemplateRepository interface {
	Create(ctx context.Context, tmpl *domain.AvailabilityTemplate) (*domain.AvailabilityTemplate, error)
	GetByID(ctx context.Context, artistID, id int64) (*domain.AvailabilityTemplate, error)
	ListByArtist(ctx context.Context, artistID int64) ([]*domain.AvailabilityTemplate, error)
	Delete(ctx context.Context, artistID, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

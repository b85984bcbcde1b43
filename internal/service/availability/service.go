package availability

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	templateRepo "github.com/m04kA/TSB-SchedulingService/internal/infra/storage/template"
)

// Service сетка доступности мастера и менеджер шаблонов
//
// Сетку редактирует одна операторская сессия (last-write-wins, без блокировок),
// поэтому синхронизация на этом уровне не нужна
type Service struct {
	availabilityRepo AvailabilityRepository
	templateRepo     TemplateRepository
	txManager        TransactionManager
	hourStart        int
	hourEnd          int
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	templateRepo TemplateRepository,
	txManager TransactionManager,
	hourStart, hourEnd int,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		templateRepo:     templateRepo,
		txManager:        txManager,
		hourStart:        hourStart,
		hourEnd:          hourEnd,
		logger:           logger,
	}
}

// HourStart возвращает начало рабочего окна (включительно)
func (s *Service) HourStart() int { return s.hourStart }

// HourEnd возвращает конец рабочего окна (не включительно)
func (s *Service) HourEnd() int { return s.hourEnd }

// GetWeek возвращает недельную сетку мастера
// Отсутствующие ячейки трактуются как недоступные (default-deny)
func (s *Service) GetWeek(ctx context.Context, artistID int64) (domain.WeeklySchedule, error) {
	schedule, err := s.availabilityRepo.GetWeek(ctx, artistID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}
	return schedule, nil
}

// SetSlot идемпотентно выставляет значение одной ячейки
func (s *Service) SetSlot(ctx context.Context, artistID int64, day, hour int, isAvailable bool) error {
	if !domain.ValidSlot(day, hour, s.hourStart, s.hourEnd) {
		s.logger.Warn("SetSlot: slot (%d, %d) out of bounds for artist=%d", day, hour, artistID)
		return fmt.Errorf("%w: day=%d hour=%d window=[%d,%d)", ErrInvalidSlot, day, hour, s.hourStart, s.hourEnd)
	}

	if err := s.availabilityRepo.SetSlot(ctx, artistID, day, hour, isAvailable); err != nil {
		s.logger.Error("SetSlot: repository error for artist=%d: %v", artistID, err)
		return fmt.Errorf("%w: SetSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetSlot: artist=%d, day=%d, hour=%d, available=%t", artistID, day, hour, isAvailable)
	return nil
}

// ToggleSlot выставляет ячейке значение, заданное режимом "кисти"
func (s *Service) ToggleSlot(ctx context.Context, artistID int64, day, hour int, mode domain.PaintMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaintMode, mode)
	}
	return s.SetSlot(ctx, artistID, day, hour, mode.IsAvailable())
}

// CreateTemplate снимает именованный снимок текущей сетки
// Снимок делается с копии (value semantics), чтобы шаблон не алиасил живое состояние
func (s *Service) CreateTemplate(ctx context.Context, artistID int64, name string) (*domain.AvailabilityTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: template name is required", ErrInvalidInput)
	}

	schedule, err := s.availabilityRepo.GetWeek(ctx, artistID)
	if err != nil {
		s.logger.Error("CreateTemplate: failed to load schedule for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: CreateTemplate - load schedule: %v", ErrInternal, err)
	}

	tmpl := &domain.AvailabilityTemplate{
		ArtistID:   artistID,
		Name:       name,
		Schedule:   schedule.Copy(),
		Recurrence: domain.RecurrenceWeekly,
	}

	created, err := s.templateRepo.Create(ctx, tmpl)
	if err != nil {
		s.logger.Error("CreateTemplate: repository error for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: CreateTemplate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTemplate: created template id=%d name=%q for artist=%d", created.ID, name, artistID)
	return created, nil
}

// ListTemplates возвращает все шаблоны мастера
func (s *Service) ListTemplates(ctx context.Context, artistID int64) ([]*domain.AvailabilityTemplate, error) {
	templates, err := s.templateRepo.ListByArtist(ctx, artistID)
	if err != nil {
		s.logger.Error("ListTemplates: repository error for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: ListTemplates - repository error: %v", ErrInternal, err)
	}
	return templates, nil
}

// DeleteTemplate удаляет шаблон целиком
func (s *Service) DeleteTemplate(ctx context.Context, artistID, templateID int64) error {
	err := s.templateRepo.Delete(ctx, artistID, templateID)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("DeleteTemplate: template id=%d not found for artist=%d", templateID, artistID)
			return ErrTemplateNotFound
		}
		s.logger.Error("DeleteTemplate: repository error for artist=%d: %v", artistID, err)
		return fmt.Errorf("%w: DeleteTemplate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTemplate: deleted template id=%d for artist=%d", templateID, artistID)
	return nil
}

// ApplyTemplate применяет шаблон к живой сетке ПОЛНОЙ ЗАМЕНОЙ, а не слиянием:
// ячейки, отсутствующие в шаблоне, становятся недоступными
// Замена выполняется в транзакции - частичного применения не бывает
func (s *Service) ApplyTemplate(ctx context.Context, artistID, templateID int64) (domain.WeeklySchedule, error) {
	tmpl, err := s.templateRepo.GetByID(ctx, artistID, templateID)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("ApplyTemplate: template id=%d not found for artist=%d", templateID, artistID)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("ApplyTemplate: repository error for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: ApplyTemplate - repository error: %v", ErrInternal, err)
	}

	applied := tmpl.Schedule.Copy()

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.availabilityRepo.ReplaceAll(txCtx, artistID, applied)
	})
	if err != nil {
		s.logger.Error("ApplyTemplate: failed to replace schedule for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: ApplyTemplate - replace schedule: %v", ErrInternal, err)
	}

	s.logger.Info("ApplyTemplate: applied template id=%d (%d cells) for artist=%d", templateID, len(applied), artistID)
	return applied, nil
}

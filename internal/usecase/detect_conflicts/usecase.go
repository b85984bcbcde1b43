package detect_conflicts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// Usecase детектор конфликтов сетки доступности и календаря
//
// Конфликт - активное бронирование, стартовая ячейка которого недоступна в сетке.
// Живой список держится в памяти и пересчитывается при каждом изменении
// сетки или календаря; источником истины остаются сетка и календарь
type Usecase struct {
	availability AvailabilityStore
	calendar     CalendarSource
	timeProvider TimeProvider
	logger       Logger

	windowDays int

	mu        sync.RWMutex
	conflicts map[int64][]domain.AvailabilityConflict
}

// NewUsecase создает новый экземпляр детектора конфликтов
func NewUsecase(
	availability AvailabilityStore,
	calendar CalendarSource,
	timeProvider TimeProvider,
	logger Logger,
	windowDays int,
) *Usecase {
	return &Usecase{
		availability: availability,
		calendar:     calendar,
		timeProvider: timeProvider,
		logger:       logger,
		windowDays:   windowDays,
		conflicts:    make(map[int64][]domain.AvailabilityConflict),
	}
}

// Recompute полностью пересчитывает конфликты мастера по живой сетке и календарю
func (u *Usecase) Recompute(ctx context.Context, artistID int64) (*Response, error) {
	now := u.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, u.windowDays-1)

	schedule, err := u.availability.GetWeek(ctx, artistID)
	if err != nil {
		u.logger.Error("Recompute: failed to load availability for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: Recompute - failed to load availability: %v", ErrInternal, err)
	}

	appointments, err := u.calendar.ListEvents(ctx, artistID, from, to)
	if err != nil {
		u.logger.Error("Recompute: failed to load appointments for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: Recompute - failed to load appointments: %v", ErrInternal, err)
	}

	conflicts := detect(schedule, appointments)

	u.mu.Lock()
	u.conflicts[artistID] = conflicts
	u.mu.Unlock()

	if len(conflicts) > 0 {
		u.logger.Warn("Recompute: artist=%d has %d availability conflicts", artistID, len(conflicts))
	}

	return toResponse(artistID, conflicts), nil
}

// Current возвращает текущий список конфликтов мастера
// Если для мастера ещё не было пересчёта, выполняет его
func (u *Usecase) Current(ctx context.Context, artistID int64) (*Response, error) {
	u.mu.RLock()
	conflicts, ok := u.conflicts[artistID]
	u.mu.RUnlock()

	if !ok {
		return u.Recompute(ctx, artistID)
	}
	return toResponse(artistID, conflicts), nil
}

// MarkSlotAvailable убирает из живого списка конфликты по ячейке,
// которую только что сделали доступной. Полный пересчёт не нужен:
// открытие ячейки не может породить новых конфликтов
func (u *Usecase) MarkSlotAvailable(artistID int64, day, hour int) int {
	key := domain.NewSlotKey(day, hour)

	u.mu.Lock()
	defer u.mu.Unlock()

	current := u.conflicts[artistID]
	kept := current[:0]
	removed := 0
	for _, c := range current {
		if c.SlotKey == key {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	u.conflicts[artistID] = kept

	if removed > 0 {
		u.logger.Info("MarkSlotAvailable: artist=%d slot=%s resolved %d conflicts", artistID, key, removed)
	}
	return removed
}

// detect вычисляет конфликты: по одной записи на активный сеанс,
// стартующий в недоступной ячейке. Гранулярность - только ячейка старта
func detect(schedule domain.WeeklySchedule, appointments []*domain.Appointment) []domain.AvailabilityConflict {
	var conflicts []domain.AvailabilityConflict

	for _, a := range appointments {
		day, hour := domain.DayHourFromTime(a.Start)
		if schedule.IsAvailable(day, hour) {
			continue
		}
		conflicts = append(conflicts, domain.AvailabilityConflict{
			BookingID:  a.BookingID,
			Day:        day,
			Hour:       hour,
			SlotKey:    domain.NewSlotKey(day, hour),
			Date:       a.Start,
			ClientName: a.ClientName,
		})
	}

	return conflicts
}

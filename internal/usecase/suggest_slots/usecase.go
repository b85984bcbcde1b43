package suggest_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// Usecase подбор и ранжирование слотов для нового сеанса
// Предложения эфемерны: вычисляются на каждый запрос по живой сетке и календарю
type Usecase struct {
	availability AvailabilityStore
	calendar     CalendarSource
	timeProvider TimeProvider
	logger       Logger

	hourStart  int
	hourEnd    int
	windowDays int
}

// NewUsecase создает новый экземпляр usecase подбора слотов
func NewUsecase(
	availability AvailabilityStore,
	calendar CalendarSource,
	timeProvider TimeProvider,
	logger Logger,
	hourStart, hourEnd, windowDays int,
) *Usecase {
	return &Usecase{
		availability: availability,
		calendar:     calendar,
		timeProvider: timeProvider,
		logger:       logger,
		hourStart:    hourStart,
		hourEnd:      hourEnd,
		windowDays:   windowDays,
	}
}

// Suggest возвращает до пяти лучших слотов для сеанса заданной длительности
func (u *Usecase) Suggest(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := u.timeProvider.Now()

	schedule, err := u.availability.GetWeek(ctx, req.ArtistID)
	if err != nil {
		u.logger.Error("Suggest: failed to load availability for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: Suggest - failed to load availability: %v", ErrInternal, err)
	}

	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, u.windowDays-1)

	appointments, err := u.calendar.ListEvents(ctx, req.ArtistID, from, to)
	if err != nil {
		u.logger.Error("Suggest: failed to load appointments for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: Suggest - failed to load appointments: %v", ErrInternal, err)
	}

	candidates := u.generateCandidates(schedule, appointments, req.DurationMinutes, now)
	u.scoreCandidates(candidates, appointments, req.Preferences)
	top := rankTop(candidates, domain.SuggestionLimit)

	u.logger.Info("Suggest: artist=%d duration=%d candidates=%d returned=%d",
		req.ArtistID, req.DurationMinutes, len(candidates), len(top))

	resp := &Response{
		ArtistID:        req.ArtistID,
		DurationMinutes: req.DurationMinutes,
		Slots:           make([]SlotResponse, 0, len(top)),
	}
	for _, s := range top {
		resp.Slots = append(resp.Slots, toSlotResponse(s))
	}
	return resp, nil
}

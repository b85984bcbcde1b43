package suggest_slots

import (
	"sort"
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// generateCandidates перебирает старты с шагом в полчаса в рабочем окне
// на windowDays дней вперёд и отбирает допустимые кандидаты:
//   - все часовые ячейки, которые покрывает сеанс, доступны в сетке
//   - нет пересечения с активными сеансами
//   - старт не в прошлом
func (u *Usecase) generateCandidates(
	schedule domain.WeeklySchedule,
	appointments []*domain.Appointment,
	durationMinutes int,
	now time.Time,
) []domain.SuggestedSlot {
	var candidates []domain.SuggestedSlot

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for dayOffset := 0; dayOffset < u.windowDays; dayOffset++ {
		date := today.AddDate(0, 0, dayOffset)

		for minutes := u.hourStart * 60; minutes+durationMinutes <= u.hourEnd*60; minutes += domain.CandidateStepMinutes {
			start := date.Add(time.Duration(minutes) * time.Minute)
			if start.Before(now) {
				continue
			}

			end := start.Add(time.Duration(durationMinutes) * time.Minute)

			if !u.cellsAvailable(schedule, start, minutes, durationMinutes) {
				continue
			}

			if overlapsAny(appointments, start, end) {
				continue
			}

			candidates = append(candidates, domain.SuggestedSlot{Start: start, End: end})
		}
	}

	return candidates
}

// cellsAvailable проверяет, что каждая часовая ячейка, затронутая интервалом
// [start, start+duration), помечена доступной. Отсутствующая ячейка недоступна
func (u *Usecase) cellsAvailable(schedule domain.WeeklySchedule, start time.Time, startMinutes, durationMinutes int) bool {
	day, _ := domain.DayHourFromTime(start)

	firstHour := startMinutes / 60
	lastHour := (startMinutes + durationMinutes - 1) / 60

	for hour := firstHour; hour <= lastHour; hour++ {
		if !schedule.IsAvailable(day, hour) {
			return false
		}
	}
	return true
}

func overlapsAny(appointments []*domain.Appointment, start, end time.Time) bool {
	for _, a := range appointments {
		if a.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// scoreCandidates начисляет аддитивную оценку каждому кандидату
func (u *Usecase) scoreCandidates(
	candidates []domain.SuggestedSlot,
	appointments []*domain.Appointment,
	prefs domain.SuggestionPreferences,
) {
	byDay := groupByDay(appointments)

	for i := range candidates {
		candidates[i].Score = u.scoreSlot(candidates[i], byDay, prefs)
	}
}

func (u *Usecase) scoreSlot(slot domain.SuggestedSlot, byDay map[string][]*domain.Appointment, prefs domain.SuggestionPreferences) int {
	score := domain.ScoreBase

	startHour := slot.Start.Hour()

	switch prefs.PreferredTimeOfDay {
	case domain.TimeOfDayMorning:
		if startHour >= domain.MorningWindowStart && startHour < domain.MorningWindowEnd {
			score += domain.ScorePreferredWindow
		}
	case domain.TimeOfDayAfternoon:
		if startHour >= domain.AfternoonWindowStart && startHour < domain.AfternoonWindowEnd {
			score += domain.ScorePreferredWindow
		}
	case domain.TimeOfDayAny:
		score += domain.ScoreAnyPreference
	}

	if !prefs.DisableGrouping {
		sameDay := byDay[slot.Start.Format(domain.DateFormat)]
		if len(sameDay) > 0 {
			score += domain.ScoreSameDayAppointments
		}
		for _, a := range sameDay {
			if gapMinutes(slot, a) <= domain.AdjacencyGapMinutes {
				score += domain.ScoreAdjacentAppointment
			}
		}
	}

	if (startHour >= 8 && startHour < 10) || (startHour >= 14 && startHour < 16) {
		score += domain.ScorePopularHours
	}

	return score
}

// gapMinutes зазор между кандидатом и сеансом в минутах, в любую сторону
// Пересечений здесь быть не может - кандидаты с пересечениями отсеяны раньше
func gapMinutes(slot domain.SuggestedSlot, a *domain.Appointment) int {
	if !a.Start.Before(slot.End) {
		return int(a.Start.Sub(slot.End).Minutes())
	}
	return int(slot.Start.Sub(a.End).Minutes())
}

func groupByDay(appointments []*domain.Appointment) map[string][]*domain.Appointment {
	byDay := make(map[string][]*domain.Appointment)
	for _, a := range appointments {
		key := a.Start.Format(domain.DateFormat)
		byDay[key] = append(byDay[key], a)
	}
	return byDay
}

// rankTop сортирует кандидатов по убыванию оценки и возвращает первые limit
// Сортировка стабильная: при равных оценках более ранний слот идёт первым,
// порядок детерминирован между запросами
func rankTop(candidates []domain.SuggestedSlot, limit int) []domain.SuggestedSlot {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

package domain

import "time"

// TimeOfDay предпочитаемое время суток для подбора слотов
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayAny       TimeOfDay = "any"
)

// Valid проверяет, что значение известно
func (t TimeOfDay) Valid() bool {
	return t == TimeOfDayMorning || t == TimeOfDayAfternoon || t == TimeOfDayAny
}

// SuggestionPreferences пожелания клиента при подборе слотов
type SuggestionPreferences struct {
	PreferredTimeOfDay TimeOfDay
	// DisableGrouping отключает бонусы за соседство с другими сеансами того же дня
	DisableGrouping bool
}

// SuggestedSlot кандидат, предложенный движком подбора
// Эфемерная сущность: вычисляется на каждый запрос, никогда не кэшируется
type SuggestedSlot struct {
	Start time.Time
	End   time.Time
	Score int
}

package domain

// Default schedule window values
const (
	DefaultHourStart            = 8
	DefaultHourEnd              = 20
	DefaultSuggestionWindowDays = 14
)

// Candidate generation constants
const (
	// CandidateStepMinutes шаг генерации кандидатов - слоты выровнены по получасу
	CandidateStepMinutes = 30

	// SuggestionLimit максимум предлагаемых слотов за запрос
	SuggestionLimit = 5
)

// Scoring constants
// Оценка аддитивная: база плюс бонусы за каждое выполненное условие
const (
	ScoreBase = 100

	// ScorePreferredWindow бонус за попадание в предпочитаемое окно
	// morning [9,12) / afternoon [14,18)
	ScorePreferredWindow = 30

	// ScoreAnyPreference небольшой бонус, когда клиенту всё равно
	ScoreAnyPreference = 5

	// ScoreSameDayAppointments бонус за наличие других сеансов в тот же день
	ScoreSameDayAppointments = 25

	// ScoreAdjacentAppointment бонус за каждый сеанс того же дня с зазором <= 120 минут
	ScoreAdjacentAppointment = 15

	// ScorePopularHours бонус за старт в часах [8,10) или [14,16)
	ScorePopularHours = 5

	// AdjacencyGapMinutes максимальный зазор до соседнего сеанса для бонуса
	AdjacencyGapMinutes = 120
)

// Preferred time-of-day windows (часы начала, [from, to))
const (
	MorningWindowStart   = 9
	MorningWindowEnd     = 12
	AfternoonWindowStart = 14
	AfternoonWindowEnd   = 18
)

// Business validation constants
const (
	MinDurationMinutes = 30
	MaxDurationMinutes = 480 // 8 часов
	MaxNameLength      = 200
	MaxNotesLength     = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, занимающих время в календаре
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

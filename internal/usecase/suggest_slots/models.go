package suggest_slots

import (
	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// Request запрос на подбор слотов для сеанса
type Request struct {
	ArtistID        int64
	DurationMinutes int
	Preferences     domain.SuggestionPreferences
}

// SlotResponse один предложенный слот
type SlotResponse struct {
	Date      string `json:"date"`      // "2026-09-15"
	StartTime string `json:"startTime"` // "14:00"
	EndTime   string `json:"endTime"`   // "15:30"
	Score     int    `json:"score"`
}

// Response ответ с ранжированными слотами
type Response struct {
	ArtistID        int64          `json:"artistId"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

func toSlotResponse(s domain.SuggestedSlot) SlotResponse {
	return SlotResponse{
		Date:      s.Start.Format(domain.DateFormat),
		StartTime: s.Start.Format(domain.TimeFormat),
		EndTime:   s.End.Format(domain.TimeFormat),
		Score:     s.Score,
	}
}

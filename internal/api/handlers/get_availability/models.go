package get_availability

import (
	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// AvailabilityResponse недельная сетка доступности мастера
// Отдаются только доступные ячейки: отсутствие ключа означает недоступность
type AvailabilityResponse struct {
	ArtistID  int64           `json:"artistId"`
	HourStart int             `json:"hourStart"`
	HourEnd   int             `json:"hourEnd"`
	Schedule  map[string]bool `json:"schedule"`
}

func toResponse(artistID int64, hourStart, hourEnd int, schedule domain.WeeklySchedule) *AvailabilityResponse {
	out := make(map[string]bool, len(schedule))
	for key, available := range schedule {
		if available {
			out[string(key)] = true
		}
	}
	return &AvailabilityResponse{
		ArtistID:  artistID,
		HourStart: hourStart,
		HourEnd:   hourEnd,
		Schedule:  out,
	}
}

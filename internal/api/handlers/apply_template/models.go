package apply_template

import (
	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// ApplyTemplateResponse сетка после применения шаблона
// Применение - полная замена: ячейки вне шаблона становятся недоступными
type ApplyTemplateResponse struct {
	ArtistID      int64           `json:"artistId"`
	TemplateID    int64           `json:"templateId"`
	Schedule      map[string]bool `json:"schedule"`
	ConflictCount int             `json:"conflictCount"`
}

func toResponse(artistID, templateID int64, schedule domain.WeeklySchedule, conflictCount int) *ApplyTemplateResponse {
	out := make(map[string]bool, len(schedule))
	for key, available := range schedule {
		if available {
			out[string(key)] = true
		}
	}
	return &ApplyTemplateResponse{
		ArtistID:      artistID,
		TemplateID:    templateID,
		Schedule:      out,
		ConflictCount: conflictCount,
	}
}

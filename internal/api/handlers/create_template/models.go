package create_template

import (
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// CreateTemplateRequest запрос на сохранение текущей сетки как шаблона
type CreateTemplateRequest struct {
	Name string `json:"name"`
}

// TemplateResponse сохранённый шаблон
type TemplateResponse struct {
	ID         int64           `json:"id"`
	ArtistID   int64           `json:"artistId"`
	Name       string          `json:"name"`
	Recurrence string          `json:"recurrence"`
	Schedule   map[string]bool `json:"schedule"`
	CreatedAt  string          `json:"createdAt"`
}

func toResponse(t *domain.AvailabilityTemplate) *TemplateResponse {
	schedule := make(map[string]bool, len(t.Schedule))
	for key, available := range t.Schedule {
		if available {
			schedule[string(key)] = true
		}
	}
	return &TemplateResponse{
		ID:         t.ID,
		ArtistID:   t.ArtistID,
		Name:       t.Name,
		Recurrence: t.Recurrence,
		Schedule:   schedule,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
	}
}

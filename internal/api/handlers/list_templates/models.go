package list_templates

import (
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// TemplateItem шаблон в списке (сетка целиком, применение отдельным вызовом)
type TemplateItem struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Recurrence string          `json:"recurrence"`
	Schedule   map[string]bool `json:"schedule"`
	CreatedAt  string          `json:"createdAt"`
}

// ListTemplatesResponse список шаблонов мастера
type ListTemplatesResponse struct {
	ArtistID  int64          `json:"artistId"`
	Templates []TemplateItem `json:"templates"`
}

func toResponse(artistID int64, templates []*domain.AvailabilityTemplate) *ListTemplatesResponse {
	items := make([]TemplateItem, 0, len(templates))
	for _, t := range templates {
		schedule := make(map[string]bool, len(t.Schedule))
		for key, available := range t.Schedule {
			if available {
				schedule[string(key)] = true
			}
		}
		items = append(items, TemplateItem{
			ID:         t.ID,
			Name:       t.Name,
			Recurrence: t.Recurrence,
			Schedule:   schedule,
			CreatedAt:  t.CreatedAt.Format(time.RFC3339),
		})
	}
	return &ListTemplatesResponse{ArtistID: artistID, Templates: items}
}

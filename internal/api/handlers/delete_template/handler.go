package delete_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TSB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/TSB-SchedulingService/internal/service/availability"
)

const (
	msgInvalidArtistID   = "некорректный ID мастера"
	msgInvalidTemplateID = "некорректный ID шаблона"
	msgTemplateNotFound  = "шаблон не найден"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/artists/{artistId}/templates/{templateId}
// Удаление шаблона не трогает живую сетку - даже если шаблон применялся
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil || artistID <= 0 {
		h.logger.Warn("DELETE /artists/{id}/templates/{tid} - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil || templateID <= 0 {
		h.logger.Warn("DELETE /artists/{id}/templates/{tid} - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	err = h.service.DeleteTemplate(r.Context(), artistID, templateID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrTemplateNotFound):
			h.logger.Warn("DELETE /artists/{id}/templates/{tid} - Template not found: artist_id=%d, template_id=%d",
				artistID, templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		default:
			h.logger.Error("DELETE /artists/{id}/templates/{tid} - Failed to delete template: artist_id=%d, template_id=%d, error=%v",
				artistID, templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /artists/{id}/templates/{tid} - Template deleted: artist_id=%d, template_id=%d",
		artistID, templateID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

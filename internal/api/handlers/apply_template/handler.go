package apply_template

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
	service  AvailabilityService
	detector ConflictDetector
	logger   Logger
}

func NewHandler(service AvailabilityService, detector ConflictDetector, logger Logger) *Handler {
	return &Handler{
		service:  service,
		detector: detector,
		logger:   logger,
	}
}

// Handle POST /api/v1/artists/{artistId}/templates/{templateId}/apply
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil || artistID <= 0 {
		h.logger.Warn("POST /artists/{id}/templates/{tid}/apply - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil || templateID <= 0 {
		h.logger.Warn("POST /artists/{id}/templates/{tid}/apply - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	schedule, err := h.service.ApplyTemplate(r.Context(), artistID, templateID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrTemplateNotFound):
			h.logger.Warn("POST /artists/{id}/templates/{tid}/apply - Template not found: artist_id=%d, template_id=%d",
				artistID, templateID)
			handlers.RespondNotFound(w, msgTemplateNotFound)

		default:
			h.logger.Error("POST /artists/{id}/templates/{tid}/apply - Failed to apply template: artist_id=%d, template_id=%d, error=%v",
				artistID, templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	conflictCount := 0
	conflicts, err := h.detector.Recompute(r.Context(), artistID)
	if err != nil {
		h.logger.Warn("POST /artists/{id}/templates/{tid}/apply - Conflict recompute failed: artist_id=%d, error=%v",
			artistID, err)
	} else {
		conflictCount = len(conflicts.Conflicts)
	}

	h.logger.Info("POST /artists/{id}/templates/{tid}/apply - Template applied: artist_id=%d, template_id=%d, conflicts=%d",
		artistID, templateID, conflictCount)
	handlers.RespondJSON(w, http.StatusOK, toResponse(artistID, templateID, schedule, conflictCount))
}

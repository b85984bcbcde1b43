package create_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TSB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/TSB-SchedulingService/internal/service/availability"
)

const (
	msgInvalidArtistID    = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "некорректное имя шаблона"
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

// Handle POST /api/v1/artists/{artistId}/templates
// Сохраняет текущую сетку мастера как именованный шаблон
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil || artistID <= 0 {
		h.logger.Warn("POST /artists/{id}/templates - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	var req CreateTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /artists/{id}/templates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	template, err := h.service.CreateTemplate(r.Context(), artistID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /artists/{id}/templates - Invalid name: artist_id=%d, name=%q", artistID, req.Name)
			handlers.RespondBadRequest(w, msgInvalidName)

		default:
			h.logger.Error("POST /artists/{id}/templates - Failed to create template: artist_id=%d, error=%v",
				artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /artists/{id}/templates - Template created: artist_id=%d, template_id=%d",
		artistID, template.ID)
	handlers.RespondJSON(w, http.StatusCreated, toResponse(template))
}

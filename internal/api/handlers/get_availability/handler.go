package get_availability

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TSB-SchedulingService/internal/api/handlers"
)

const (
	msgInvalidArtistID = "некорректный ID мастера"
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

// Handle GET /api/v1/artists/{artistId}/availability
// Публичный endpoint - сетку видят клиенты при выборе времени
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil || artistID <= 0 {
		h.logger.Warn("GET /artists/{id}/availability - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	schedule, err := h.service.GetWeek(r.Context(), artistID)
	if err != nil {
		h.logger.Error("GET /artists/{id}/availability - Failed to get schedule: artist_id=%d, error=%v", artistID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(artistID, h.service.HourStart(), h.service.HourEnd(), schedule))
}

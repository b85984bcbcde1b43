package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/TSB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	"github.com/m04kA/TSB-SchedulingService/internal/service/calendar"
)

const (
	msgInvalidArtistID = "некорректный ID мастера"
	msgInvalidPeriod   = "некорректный период, ожидается from и to в формате YYYY-MM-DD"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/artists/{artistId}/appointments?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil || artistID <= 0 {
		h.logger.Warn("GET /artists/{id}/appointments - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	from, err := time.Parse(domain.DateFormat, r.URL.Query().Get("from"))
	if err != nil {
		h.logger.Warn("GET /artists/{id}/appointments - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	to, err := time.Parse(domain.DateFormat, r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /artists/{id}/appointments - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	appointments, err := h.service.ListEvents(r.Context(), artistID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidRange):
			h.logger.Warn("GET /artists/{id}/appointments - Invalid range: artist_id=%d", artistID)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /artists/{id}/appointments - Failed to list appointments: artist_id=%d, error=%v",
				artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(artistID, from, to, appointments))
}

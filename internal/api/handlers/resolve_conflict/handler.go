package resolve_conflict

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
	msgInvalidSlot        = "ячейка вне рабочего окна расписания"
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

// Handle POST /api/v1/artists/{artistId}/conflicts/resolve
// Открывает ячейку и снимает связанные с ней конфликты из живого списка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil || artistID <= 0 {
		h.logger.Warn("POST /artists/{id}/conflicts/resolve - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	var req ResolveConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /artists/{id}/conflicts/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.SetSlot(r.Context(), artistID, req.Day, req.Hour, true)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidSlot):
			h.logger.Warn("POST /artists/{id}/conflicts/resolve - Invalid slot: artist_id=%d, day=%d, hour=%d",
				artistID, req.Day, req.Hour)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("POST /artists/{id}/conflicts/resolve - Failed to open slot: artist_id=%d, error=%v",
				artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resolved := h.detector.MarkSlotAvailable(artistID, req.Day, req.Hour)

	h.logger.Info("POST /artists/{id}/conflicts/resolve - Resolved: artist_id=%d, day=%d, hour=%d, count=%d",
		artistID, req.Day, req.Hour, resolved)
	handlers.RespondJSON(w, http.StatusOK, ResolveConflictResponse{
		ArtistID:      artistID,
		Day:           req.Day,
		Hour:          req.Hour,
		ResolvedCount: resolved,
	})
}

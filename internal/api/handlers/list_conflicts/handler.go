package list_conflicts

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
	detector ConflictDetector
	logger   Logger
}

func NewHandler(detector ConflictDetector, logger Logger) *Handler {
	return &Handler{
		detector: detector,
		logger:   logger,
	}
}

// Handle GET /api/v1/artists/{artistId}/conflicts
// Query param refresh=true принудительно пересчитывает список по живым данным
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil || artistID <= 0 {
		h.logger.Warn("GET /artists/{id}/conflicts - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	fetch := h.detector.Current
	if r.URL.Query().Get("refresh") == "true" {
		fetch = h.detector.Recompute
	}

	resp, err := fetch(r.Context(), artistID)
	if err != nil {
		h.logger.Error("GET /artists/{id}/conflicts - Failed to get conflicts: artist_id=%d, error=%v", artistID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

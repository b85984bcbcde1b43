package update_availability_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TSB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	"github.com/m04kA/TSB-SchedulingService/internal/service/availability"
	detectConflicts "github.com/m04kA/TSB-SchedulingService/internal/usecase/detect_conflicts"
)

const (
	msgInvalidArtistID    = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlot        = "ячейка вне рабочего окна расписания"
	msgInvalidMode        = "некорректный режим, ожидается available или blocked"
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

// Handle PUT /api/v1/artists/{artistId}/availability/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil || artistID <= 0 {
		h.logger.Warn("PUT /artists/{id}/availability/slots - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /artists/{id}/availability/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	mode := domain.PaintMode(req.Mode)

	err = h.service.ToggleSlot(r.Context(), artistID, req.Day, req.Hour, mode)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidSlot):
			h.logger.Warn("PUT /artists/{id}/availability/slots - Invalid slot: artist_id=%d, day=%d, hour=%d",
				artistID, req.Day, req.Hour)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, availability.ErrInvalidPaintMode):
			h.logger.Warn("PUT /artists/{id}/availability/slots - Invalid mode: artist_id=%d, mode=%q", artistID, req.Mode)
			handlers.RespondBadRequest(w, msgInvalidMode)

		default:
			h.logger.Error("PUT /artists/{id}/availability/slots - Failed to update slot: artist_id=%d, error=%v",
				artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	conflictCount := h.refreshConflicts(r, artistID, req.Day, req.Hour, mode)

	h.logger.Info("PUT /artists/{id}/availability/slots - Slot updated: artist_id=%d, day=%d, hour=%d, mode=%s",
		artistID, req.Day, req.Hour, mode)
	handlers.RespondJSON(w, http.StatusOK, UpdateSlotResponse{
		ArtistID:      artistID,
		SlotKey:       string(domain.NewSlotKey(req.Day, req.Hour)),
		IsAvailable:   mode.IsAvailable(),
		ConflictCount: conflictCount,
	})
}

// refreshConflicts обновляет живой список конфликтов после правки ячейки
// Открытие ячейки только снимает конфликты по ней - полный пересчёт не нужен;
// блокировка может создать новые, поэтому пересчитываем целиком
func (h *Handler) refreshConflicts(r *http.Request, artistID int64, day, hour int, mode domain.PaintMode) int {
	var resp *detectConflicts.Response
	var err error

	if mode.IsAvailable() {
		resolved := h.detector.MarkSlotAvailable(artistID, day, hour)
		if resolved > 0 {
			h.logger.Info("PUT /artists/{id}/availability/slots - Resolved %d conflicts: artist_id=%d", resolved, artistID)
		}
		resp, err = h.detector.Current(r.Context(), artistID)
	} else {
		resp, err = h.detector.Recompute(r.Context(), artistID)
	}

	if err != nil {
		// Сетка уже обновлена, устаревший список конфликтов догонит следующий пересчёт
		h.logger.Warn("PUT /artists/{id}/availability/slots - Conflict recompute failed: artist_id=%d, error=%v",
			artistID, err)
		return 0
	}
	return len(resp.Conflicts)
}

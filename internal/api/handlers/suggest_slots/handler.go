package suggest_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TSB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	suggestSlots "github.com/m04kA/TSB-SchedulingService/internal/usecase/suggest_slots"
)

const (
	msgInvalidArtistID   = "некорректный ID мастера"
	msgInvalidDuration   = "некорректная длительность сеанса"
	msgInvalidPreference = "некорректное предпочтение времени суток, ожидается morning, afternoon или any"
)

type Handler struct {
	useCase SuggestSlotsUseCase
	logger  Logger
}

func NewHandler(useCase SuggestSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/artists/{artistId}/suggested-slots
// Query params: durationMinutes (обязателен), preferredTimeOfDay, disableGrouping
// Пустой список слотов - валидный ответ 200, а не ошибка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil || artistID <= 0 {
		h.logger.Warn("GET /artists/{id}/suggested-slots - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	durationMinutes, err := strconv.Atoi(r.URL.Query().Get("durationMinutes"))
	if err != nil {
		h.logger.Warn("GET /artists/{id}/suggested-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	preference := domain.TimeOfDay(r.URL.Query().Get("preferredTimeOfDay"))
	if preference == "" {
		preference = domain.TimeOfDayAny
	}

	req := suggestSlots.Request{
		ArtistID:        artistID,
		DurationMinutes: durationMinutes,
		Preferences: domain.SuggestionPreferences{
			PreferredTimeOfDay: preference,
			DisableGrouping:    r.URL.Query().Get("disableGrouping") == "true",
		},
	}

	result, err := h.useCase.Suggest(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, suggestSlots.ErrInvalidArtist):
			h.logger.Warn("GET /artists/{id}/suggested-slots - Invalid artist: artist_id=%d", artistID)
			handlers.RespondBadRequest(w, msgInvalidArtistID)

		case errors.Is(err, suggestSlots.ErrInvalidDuration):
			h.logger.Warn("GET /artists/{id}/suggested-slots - Invalid duration: artist_id=%d, duration=%d",
				artistID, durationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, suggestSlots.ErrInvalidPreference):
			h.logger.Warn("GET /artists/{id}/suggested-slots - Invalid preference: artist_id=%d, preference=%q",
				artistID, preference)
			handlers.RespondBadRequest(w, msgInvalidPreference)

		default:
			h.logger.Error("GET /artists/{id}/suggested-slots - Failed to suggest: artist_id=%d, error=%v",
				artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /artists/{id}/suggested-slots - Suggested %d slots: artist_id=%d, duration=%d",
		len(result.Slots), artistID, durationMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/TSB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/TSB-SchedulingService/internal/service/calendar"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound           = "сеанс не найден"
	msgTimeSlotBusy       = "новое время пересекается с другим сеансом"
)

type Handler struct {
	service  CalendarService
	detector ConflictDetector
	logger   Logger
}

func NewHandler(service CalendarService, detector ConflictDetector, logger Logger) *Handler {
	return &Handler{
		service:  service,
		detector: detector,
		logger:   logger,
	}
}

// Handle PATCH /api/v1/appointments/{bookingId}/reschedule
//
// Чужое бронирование неотличимо от несуществующего: условие (id AND artist_id)
// в хранилище закрывает операцию отказом 404, а не 403
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	newStart, newEnd, err := req.ToInterval()
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	err = h.service.Reschedule(r.Context(), req.ArtistID, bookingID, newStart, newEnd)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Not found: booking_id=%d, artist_id=%d",
				bookingID, req.ArtistID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, calendar.ErrTimeSlotBusy):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Slot busy: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgTimeSlotBusy)

		case errors.Is(err, calendar.ErrInvalidRange):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid range: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		default:
			h.logger.Error("PATCH /appointments/{id}/reschedule - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if _, err := h.detector.Recompute(r.Context(), req.ArtistID); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Conflict recompute failed: artist_id=%d, error=%v",
			req.ArtistID, err)
	}

	h.logger.Info("PATCH /appointments/{id}/reschedule - Rescheduled: booking_id=%d, new_start=%s",
		bookingID, newStart.Format(time.RFC3339))
	handlers.RespondJSON(w, http.StatusOK, RescheduleResponse{
		BookingID: bookingID,
		NewStart:  newStart.Format(time.RFC3339),
		NewEnd:    newEnd.Format(time.RFC3339),
	})
}

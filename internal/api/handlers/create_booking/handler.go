package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TSB-SchedulingService/internal/api/handlers"
	createBooking "github.com/m04kA/TSB-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgTimeSlotBusy       = "выбранное время уже занято"
	msgSlotUnavailable    = "выбранное время недоступно в расписании мастера"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.CreateBooking(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: artist_id=%d, error=%v", req.ArtistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrTimeSlotBusy):
			h.logger.Warn("POST /bookings - Time slot busy: artist_id=%d, date=%s, start=%s",
				req.ArtistID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgTimeSlotBusy)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: artist_id=%d, date=%s, start=%s",
				req.ArtistID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: artist_id=%d, error=%v", req.ArtistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, artist_id=%d, date=%s, start=%s",
		result.ID, result.ArtistID, result.BookingDate, result.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

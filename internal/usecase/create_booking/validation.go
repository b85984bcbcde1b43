package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	"github.com/m04kA/TSB-SchedulingService/pkg/types"
)

// validateRequest проверяет входные данные и разбирает дату и время
func validateRequest(req Request, now time.Time) (*parsedRequest, error) {
	if req.ArtistID <= 0 {
		return nil, fmt.Errorf("%w: artistID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return nil, fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if !strings.Contains(req.ClientEmail, "@") {
		return nil, fmt.Errorf("%w: clientEmail is invalid", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return nil, fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	bookingDate, err := time.ParseInLocation(domain.DateFormat, req.BookingDate, now.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: bookingDate must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	// За пределы суток сеанс выходить не может
	if _, err := startTime.AddMinutes(req.DurationMinutes); err != nil {
		return nil, fmt.Errorf("%w: session must end within the same day", ErrInvalidInput)
	}

	start := time.Date(
		bookingDate.Year(), bookingDate.Month(), bookingDate.Day(),
		startTime.Hour(), startTime.Minute(), 0, 0, now.Location(),
	)
	if start.Before(now) {
		return nil, fmt.Errorf("%w: booking cannot start in the past", ErrInvalidInput)
	}

	return &parsedRequest{bookingDate: bookingDate, startTime: startTime}, nil
}

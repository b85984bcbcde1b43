package suggest_slots

import (
	"fmt"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req Request) error {
	if req.ArtistID <= 0 {
		return fmt.Errorf("%w: artistID must be positive", ErrInvalidArtist)
	}

	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidDuration, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if !req.Preferences.PreferredTimeOfDay.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPreference, req.Preferences.PreferredTimeOfDay)
	}

	return nil
}

package reschedule_appointment

import (
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	"github.com/m04kA/TSB-SchedulingService/pkg/types"
)

// RescheduleRequest запрос на перенос сеанса
type RescheduleRequest struct {
	ArtistID        int64  `json:"artistId"`
	NewDate         string `json:"newDate"`      // "2026-09-15"
	NewStartTime    string `json:"newStartTime"` // "14:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// RescheduleResponse подтверждение переноса
type RescheduleResponse struct {
	BookingID int64  `json:"bookingId"`
	NewStart  string `json:"newStart"` // RFC3339
	NewEnd    string `json:"newEnd"`   // RFC3339
}

// ToInterval разбирает дату и время запроса в интервал сеанса
func (r *RescheduleRequest) ToInterval() (start, end time.Time, err error) {
	date, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	startTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start = time.Date(date.Year(), date.Month(), date.Day(), startTime.Hour(), startTime.Minute(), 0, 0, date.Location())
	end = start.Add(time.Duration(r.DurationMinutes) * time.Minute)
	return start, end, nil
}

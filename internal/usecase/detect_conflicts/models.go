package detect_conflicts

import (
	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// ConflictResponse один конфликт сетки и календаря
type ConflictResponse struct {
	BookingID  int64  `json:"bookingId"`
	Day        int    `json:"day"`  // 0=понедельник
	Hour       int    `json:"hour"` // час стартовой ячейки
	SlotKey    string `json:"slotKey"`
	Date       string `json:"date"` // "2026-09-15"
	ClientName string `json:"clientName"`
}

// Response список текущих конфликтов мастера
type Response struct {
	ArtistID  int64              `json:"artistId"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

func toConflictResponse(c domain.AvailabilityConflict) ConflictResponse {
	return ConflictResponse{
		BookingID:  c.BookingID,
		Day:        c.Day,
		Hour:       c.Hour,
		SlotKey:    string(c.SlotKey),
		Date:       c.Date.Format(domain.DateFormat),
		ClientName: c.ClientName,
	}
}

func toResponse(artistID int64, conflicts []domain.AvailabilityConflict) *Response {
	resp := &Response{
		ArtistID:  artistID,
		Conflicts: make([]ConflictResponse, 0, len(conflicts)),
	}
	for _, c := range conflicts {
		resp.Conflicts = append(resp.Conflicts, toConflictResponse(c))
	}
	return resp
}

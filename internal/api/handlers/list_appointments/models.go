package list_appointments

import (
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// AppointmentItem активный сеанс в календаре мастера
type AppointmentItem struct {
	BookingID  int64  `json:"bookingId"`
	Start      string `json:"start"` // RFC3339
	End        string `json:"end"`   // RFC3339
	ClientName string `json:"clientName"`
	Status     string `json:"status"`
}

// ListAppointmentsResponse календарь мастера за период
type ListAppointmentsResponse struct {
	ArtistID     int64             `json:"artistId"`
	From         string            `json:"from"`
	To           string            `json:"to"`
	Appointments []AppointmentItem `json:"appointments"`
}

func toResponse(artistID int64, from, to time.Time, appointments []*domain.Appointment) *ListAppointmentsResponse {
	items := make([]AppointmentItem, 0, len(appointments))
	for _, a := range appointments {
		items = append(items, AppointmentItem{
			BookingID:  a.BookingID,
			Start:      a.Start.Format(time.RFC3339),
			End:        a.End.Format(time.RFC3339),
			ClientName: a.ClientName,
			Status:     string(a.Status),
		})
	}
	return &ListAppointmentsResponse{
		ArtistID:     artistID,
		From:         from.Format(domain.DateFormat),
		To:           to.Format(domain.DateFormat),
		Appointments: items,
	}
}

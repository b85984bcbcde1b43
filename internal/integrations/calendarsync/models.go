package calendarsync

// CreateBookingRequest запрос на создание записи во внешнем календаре
type CreateBookingRequest struct {
	ResourceIdentity  string `json:"resourceIdentity"`  // идентификатор мастера во внешней системе
	EventTypeIdentity string `json:"eventTypeIdentity"` // тип события (например "tattoo-session")
	StartTime         string `json:"startTime"`         // RFC3339
	ClientName        string `json:"clientName"`
	ClientEmail       string `json:"clientEmail"`
}

// CreateBookingResponse ответ внешнего календаря
type CreateBookingResponse struct {
	BookingID string `json:"bookingId"`
}

package resolve_conflict

// ResolveConflictRequest разрешение конфликта открытием ячейки
// Альтернативный путь - перенос сеанса через PATCH /appointments/{id}/reschedule
type ResolveConflictRequest struct {
	Day  int `json:"day"`
	Hour int `json:"hour"`
}

// ResolveConflictResponse результат разрешения
type ResolveConflictResponse struct {
	ArtistID      int64 `json:"artistId"`
	Day           int   `json:"day"`
	Hour          int   `json:"hour"`
	ResolvedCount int   `json:"resolvedCount"`
}

package update_availability_slot

// UpdateSlotRequest запрос на изменение одной ячейки сетки
type UpdateSlotRequest struct {
	Day  int    `json:"day"`  // 0=понедельник .. 6=воскресенье
	Hour int    `json:"hour"` // час начала ячейки
	Mode string `json:"mode"` // "available" | "blocked"
}

// UpdateSlotResponse результат изменения ячейки
type UpdateSlotResponse struct {
	ArtistID    int64  `json:"artistId"`
	SlotKey     string `json:"slotKey"`
	IsAvailable bool   `json:"isAvailable"`

	// ConflictCount число конфликтов после правки - подсказка фронту подсветить их
	ConflictCount int `json:"conflictCount"`
}

package domain

import "time"

// AvailabilityConflict активное бронирование, стартующее в недоступной ячейке сетки
// Эфемерная сущность: пересчитывается при каждом изменении сетки или календаря, не хранится
//
// Гранулярность - только ячейка старта: многочасовой сеанс даёт ровно одну
// запись конфликта по своей стартовой ячейке
type AvailabilityConflict struct {
	BookingID  int64
	Day        int
	Hour       int
	SlotKey    SlotKey
	Date       time.Time
	ClientName string
}

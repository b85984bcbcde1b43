package domain

import "time"

// RecurrenceWeekly единственный поддерживаемый тип повторения шаблона
const RecurrenceWeekly = "weekly"

// AvailabilityTemplate именованный неизменяемый снимок недельной сетки
// После создания шаблон можно только применить целиком или удалить - частичного слияния нет
type AvailabilityTemplate struct {
	ID         int64
	ArtistID   int64
	Name       string
	Schedule   WeeklySchedule
	Recurrence string
	CreatedAt  time.Time
}

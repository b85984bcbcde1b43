package domain

import (
	"fmt"
	"time"
)

// SlotKey ключ ячейки недельной сетки в формате "день-час" (например "2-14")
type SlotKey string

// NewSlotKey собирает ключ ячейки из дня недели и часа
func NewSlotKey(day, hour int) SlotKey {
	return SlotKey(fmt.Sprintf("%d-%d", day, hour))
}

// PaintMode режим "кисти" при редактировании сетки доступности
type PaintMode string

const (
	PaintAvailable PaintMode = "available"
	PaintBlocked   PaintMode = "blocked"
)

// IsAvailable возвращает булево значение, которое режим назначает ячейке
func (m PaintMode) IsAvailable() bool {
	return m == PaintAvailable
}

// Valid проверяет, что режим известен
func (m PaintMode) Valid() bool {
	return m == PaintAvailable || m == PaintBlocked
}

// WeeklySchedule недельная сетка доступности: ячейка (день, час) -> доступна ли
// Отсутствие ячейки означает недоступность (default-deny)
type WeeklySchedule map[SlotKey]bool

// IsAvailable проверяет доступность ячейки; отсутствующая ячейка недоступна
func (s WeeklySchedule) IsAvailable(day, hour int) bool {
	return s[NewSlotKey(day, hour)]
}

// Set выставляет значение ячейки
func (s WeeklySchedule) Set(day, hour int, available bool) {
	s[NewSlotKey(day, hour)] = available
}

// Copy возвращает глубокую копию сетки
// Шаблоны снимаются с копии, чтобы не алиасить живое состояние
func (s WeeklySchedule) Copy() WeeklySchedule {
	cp := make(WeeklySchedule, len(s))
	for k, v := range s {
		cp[k] = v
	}
	return cp
}

// ValidSlot проверяет границы ячейки: день в [0,6], час в рабочем окне [hourStart, hourEnd)
func ValidSlot(day, hour, hourStart, hourEnd int) bool {
	return day >= 0 && day <= 6 && hour >= hourStart && hour < hourEnd
}

// DayHourFromTime отображает момент времени в ячейку сетки (Monday=0)
func DayHourFromTime(t time.Time) (day int, hour int) {
	// time.Weekday: Sunday=0, нам нужен Monday=0
	day = (int(t.Weekday()) + 6) % 7
	hour = t.Hour()
	return day, hour
}

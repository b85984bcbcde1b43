package suggest_slots

import "errors"

var (
	// ErrInvalidArtist возвращается при некорректном ID мастера
	ErrInvalidArtist = errors.New("invalid artist id")

	// ErrInvalidDuration возвращается при некорректной длительности сеанса
	ErrInvalidDuration = errors.New("invalid session duration")

	// ErrInvalidPreference возвращается при некорректном предпочтении времени суток
	ErrInvalidPreference = errors.New("invalid time of day preference")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)

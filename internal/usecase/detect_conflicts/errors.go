package detect_conflicts

import "errors"

var (
	// ErrConflictNotFound возвращается, когда конфликт с указанным бронированием не найден
	ErrConflictNotFound = errors.New("conflict not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)

package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input")

	// ErrTimeSlotBusy возвращается, когда время пересекается с другим активным сеансом
	ErrTimeSlotBusy = errors.New("time slot is busy")

	// ErrSlotUnavailable возвращается, когда сеанс попадает в недоступные ячейки сетки
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)

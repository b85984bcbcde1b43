package calendar

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда бронирование не найдено
	// или принадлежит другому мастеру (операция закрывается отказом)
	ErrAppointmentNotFound = errors.New("calendar: appointment not found")

	// ErrTimeSlotBusy возвращается, когда новый интервал пересекается с другим активным сеансом
	ErrTimeSlotBusy = errors.New("calendar: time slot overlaps another appointment")

	// ErrInvalidRange возвращается при некорректном временном интервале
	ErrInvalidRange = errors.New("calendar: invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)

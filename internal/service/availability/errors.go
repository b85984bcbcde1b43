package availability

import "errors"

var (
	// ErrInvalidSlot возвращается для ячейки вне дней [0,6] или рабочего окна
	ErrInvalidSlot = errors.New("availability: slot is out of schedule bounds")

	// ErrInvalidPaintMode возвращается при неизвестном режиме редактирования
	ErrInvalidPaintMode = errors.New("availability: invalid paint mode")

	// ErrTemplateNotFound возвращается, когда шаблон не найден
	ErrTemplateNotFound = errors.New("availability: template not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	// Сбои хранилища пробрасываются вызывающей стороне - частичных записей не бывает
	ErrInternal = errors.New("availability: internal error")
)

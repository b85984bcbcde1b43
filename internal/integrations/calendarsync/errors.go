package calendarsync

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarsync client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("calendarsync client: invalid response")

	// ErrServiceDegraded возвращается при недоступности внешнего календаря
	// Подтверждение бронирования от этой интеграции не зависит - ошибка только логируется
	ErrServiceDegraded = errors.New("calendarsync unavailable: booking proceeds without external calendar")
)

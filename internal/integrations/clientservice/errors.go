package clientservice

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден в справочнике
	ErrClientNotFound = errors.New("clientservice: client not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clientservice: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("clientservice: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что справочник недоступен и запись можно создать без
	// денормализованного имени клиента.
	ErrServiceDegraded = errors.New("clientservice unavailable: graceful degradation applied")
)

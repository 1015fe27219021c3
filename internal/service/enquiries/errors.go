package enquiries

import "errors"

var (
	// ErrEnquiryNotFound возвращается, когда заявка не найдена
	ErrEnquiryNotFound = errors.New("enquiries.service: enquiry not found")

	// ErrClientNotFound возвращается, когда клиент не найден в справочнике CRM
	ErrClientNotFound = errors.New("enquiries.service: client not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("enquiries.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("enquiries.service: internal error")
)

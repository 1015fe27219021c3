package change_enquiry_status

import "github.com/m04kA/SMC-VenueService/internal/domain"

// Request модель запроса на смену статуса заявки
type Request struct {
	EnquiryID    string              // ID заявки
	TargetStatus domain.RecordStatus // Целевой статус
	AckToken     *string             // Bypass-once токен подтверждения предупреждений
}

// Response модель ответа после смены статуса
type Response struct {
	EnquiryID string              // ID заявки
	Status    domain.RecordStatus // Новый статус

	// ConflictCheckSkipped: true, если снапшот записей получить не удалось
	// и переход выполнен по fail-open политике без проверки конфликтов
	ConflictCheckSkipped bool

	// Warnings предупреждения, подтвержденные bypass-once токеном
	Warnings []domain.Conflict
}

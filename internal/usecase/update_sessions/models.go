package update_sessions

import "github.com/m04kA/SMC-VenueService/internal/domain"

// Request модель запроса на изменение сессий записи
type Request struct {
	Kind     domain.RecordKind // enquiry или booking
	RecordID string            // ID записи
	Sessions []domain.Session  // Новый полный набор сессий
	AckToken *string           // Bypass-once токен подтверждения предупреждений
}

// Response модель ответа после изменения сессий
type Response struct {
	RecordID string            // ID записи
	Kind     domain.RecordKind // Тип записи
	Sessions []domain.Session  // Сохраненные сессии

	// Warnings предупреждения, подтвержденные bypass-once токеном
	Warnings []domain.Conflict
}

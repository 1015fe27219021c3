package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID   int64            // ID менеджера, создающего бронирование
	ClientID int64            // ID клиента из справочника CRM
	Sessions []domain.Session // Сессии бронирования (площадка + дата + время)
	Notes    *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         string           // ID созданного бронирования
	UserID     int64            // ID менеджера
	ClientID   int64            // ID клиента
	ClientName string           // Денормализованное имя клиента
	Status     string           // Статус бронирования
	Sessions   []domain.Session // Сессии
	Notes      *string          // Заметки

	// Warning-конфликты, обнаруженные при создании. Не блокируют
	// серверное создание и возвращаются для отображения.
	Warnings []domain.Conflict

	CreatedAt time.Time
	UpdatedAt time.Time
}

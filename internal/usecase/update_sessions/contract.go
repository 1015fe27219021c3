package update_sessions

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// EnquiryRepository интерфейс репозитория заявок
type EnquiryRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Enquiry, error)
	ReplaceSessions(ctx context.Context, id string, sessions []domain.Session) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ReplaceSessions(ctx context.Context, id string, sessions []domain.Session) error
}

// RecordSource интерфейс источника записей для проверки конфликтов
type RecordSource interface {
	ListAll(ctx context.Context) ([]*domain.Record, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс бизнес-метрик проверки конфликтов
type Metrics interface {
	ObserveConflictCheck(workflow string, blocking, warnings int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package records

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// EnquiryRepository интерфейс репозитория заявок
type EnquiryRepository interface {
	ListWithSessions(ctx context.Context) ([]*domain.Enquiry, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListWithSessions(ctx context.Context) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

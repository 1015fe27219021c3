package records

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Service собирает снапшот всех записей (заявки + бронирования) для
// проверки конфликтов.
//
// Сервис намеренно НЕ фильтрует записи по статусу: правила исключения
// (lost/closed/cancelled не конкурируют) живут в одном месте —
// в классификаторе. Снапшот собирается заново на каждый вызов: данные
// могли измениться, устаревший результат проверки может молча одобрить
// реально конфликтующее бронирование.
type Service struct {
	enquiryRepo EnquiryRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(enquiryRepo EnquiryRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		enquiryRepo: enquiryRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListAll возвращает все записи в виде read-only снапшотов.
// Порядок детерминирован: сначала заявки, затем бронирования,
// внутри — порядок репозитория (created_at, id).
func (s *Service) ListAll(ctx context.Context) ([]*domain.Record, error) {
	enquiries, err := s.enquiryRepo.ListWithSessions(ctx)
	if err != nil {
		s.logger.Error("ListAll: failed to list enquiries: %v", err)
		return nil, fmt.Errorf("%w: failed to list enquiries: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.ListWithSessions(ctx)
	if err != nil {
		s.logger.Error("ListAll: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	result := make([]*domain.Record, 0, len(enquiries)+len(bookings))
	for _, enq := range enquiries {
		result = append(result, enq.Snapshot())
	}
	for _, bk := range bookings {
		result = append(result, bk.Snapshot())
	}

	return result, nil
}

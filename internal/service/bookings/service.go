package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	bk, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: failed to get booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	return bk, nil
}

// Cancel отменяет бронирование с указанием причины.
// Отмененное бронирование перестает участвовать в проверке конфликтов
// со следующего вызова классификатора.
func (s *Service) Cancel(ctx context.Context, id string, reason string) error {
	if id == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}
	if len(reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	err := s.bookingRepo.Cancel(ctx, id, reason)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrCannotCancel) {
			// Различаем "не найдено" и "нельзя отменить"
			if _, getErr := s.bookingRepo.GetByID(ctx, id); errors.Is(getErr, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: failed to cancel booking id=%s: %v", id, err)
		return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%s cancelled", id)
	return nil
}

package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VenueService/internal/conflictcheck"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/integrations/clientservice"
)

// workflowName имя workflow для бизнес-метрик
const workflowName = "create_booking"

// UseCase use case создания бронирования площадки
type UseCase struct {
	bookingRepo  BookingRepository
	recordSource RecordSource
	clientClient ClientServiceClient
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	recordSource RecordSource,
	clientClient ClientServiceClient,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		recordSource: recordSource,
		clientClient: clientClient,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и вставка выполняются в сериализуемой транзакции
// для предотвращения гонки двух одновременных бронирований.
//
// Блокирующие конфликты останавливают создание (VenueConflictError → 409).
// Warning-конфликты создание НЕ останавливают: серверный контракт
// возвращает их в ответе, подтверждение предупреждений — дело
// интерактивных workflow (смена статуса заявки, редактирование сессий).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, client=%d, sessions=%d",
		req.UserID, req.ClientID, len(req.Sessions))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем клиента из справочника (graceful degradation:
	// при недоступности справочника бронирование создается без имени)
	clientName := ""
	client, err := uc.clientClient.GetClientWithGracefulDegradation(ctx, req.ClientID)
	switch {
	case err == nil:
		clientName = client.DisplayName()
	case errors.Is(err, clientservice.ErrClientNotFound):
		uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
		return nil, ErrClientNotFound
	case errors.Is(err, clientservice.ErrServiceDegraded):
		uc.logger.Warn("CreateBooking: client directory degraded, proceeding without client name")
	default:
		uc.logger.Error("CreateBooking: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// ID генерируется заранее: он нужен классификатору для самоисключения
	bookingID := uuid.NewString()

	var result *domain.Booking
	var warnings []domain.Conflict

	// 3. Проверка конфликтов + вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Снапшот всех записей (с блокировкой FOR UPDATE)
		others, err := uc.recordSource.ListAll(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list records: %v", err)
			return fmt.Errorf("%w: failed to list records: %v", ErrInternal, err)
		}

		// 3.2. Классифицируем конфликты
		classification := conflictcheck.Classify(conflictcheck.Candidate{
			ID:       bookingID,
			Sessions: req.Sessions,
		}, others)

		uc.metrics.ObserveConflictCheck(workflowName,
			len(classification.BlockingConflicts()), len(classification.Warnings()))

		if classification.Blocking {
			uc.logger.Warn("CreateBooking: blocked by %d conflict(s) for user=%d, client=%d",
				len(classification.BlockingConflicts()), req.UserID, req.ClientID)
			return &VenueConflictError{Classification: classification}
		}

		warnings = classification.Warnings()

		// 3.3. Создаем бронирование
		booking := &domain.Booking{
			ID:         bookingID,
			UserID:     req.UserID,
			ClientID:   req.ClientID,
			ClientName: clientName,
			Status:     domain.StatusBooked,
			Sessions:   req.Sessions,
			Notes:      req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s (warnings=%d)",
		result.ID, len(warnings))

	return &Response{
		ID:         result.ID,
		UserID:     result.UserID,
		ClientID:   result.ClientID,
		ClientName: result.ClientName,
		Status:     string(result.Status),
		Sessions:   result.Sessions,
		Notes:      result.Notes,
		Warnings:   warnings,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

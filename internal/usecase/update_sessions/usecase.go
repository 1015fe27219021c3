package update_sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/conflictcheck"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
	enquiryRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/enquiry"
)

// workflowName имя workflow для бизнес-метрик
const workflowName = "update_sessions"

// UseCase use case редактирования сессий заявки или бронирования.
// Новый набор сессий проходит ту же проверку конфликтов, что и создание
// бронирования: blocking → отказ (409), warnings → bypass-once
// подтверждение. Токен привязан к новому набору сессий и текущему
// статусу записи, так что любое изменение данных требует новой оценки.
type UseCase struct {
	enquiryRepo  EnquiryRepository
	bookingRepo  BookingRepository
	recordSource RecordSource
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	enquiryRepo EnquiryRepository,
	bookingRepo BookingRepository,
	recordSource RecordSource,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		enquiryRepo:  enquiryRepo,
		bookingRepo:  bookingRepo,
		recordSource: recordSource,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case изменения сессий
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSessions: kind=%s, record=%s, sessions=%d",
		req.Kind, req.RecordID, len(req.Sessions))

	// 1. Валидация входных данных
	if req.RecordID == "" {
		return nil, fmt.Errorf("%w: recordID is required", ErrInvalidInput)
	}
	if req.Kind != domain.KindEnquiry && req.Kind != domain.KindBooking {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, req.Kind)
	}
	if len(req.Sessions) > domain.MaxSessionsPerRecord {
		return nil, fmt.Errorf("%w: too many sessions (max %d)", ErrInvalidInput, domain.MaxSessionsPerRecord)
	}

	// 2. Получаем текущий статус записи
	status, err := uc.recordStatus(ctx, req.Kind, req.RecordID)
	if err != nil {
		return nil, err
	}

	var acknowledged []domain.Conflict

	// 3. Проверка конфликтов + замена сессий в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		others, err := uc.recordSource.ListAll(txCtx)
		if err != nil {
			uc.logger.Error("UpdateSessions: failed to list records: %v", err)
			return fmt.Errorf("%w: failed to list records: %v", ErrInternal, err)
		}

		classification := conflictcheck.Classify(conflictcheck.Candidate{
			ID:       req.RecordID,
			Sessions: req.Sessions,
		}, others)

		uc.metrics.ObserveConflictCheck(workflowName,
			len(classification.BlockingConflicts()), len(classification.Warnings()))

		if classification.Blocking {
			uc.logger.Warn("UpdateSessions: record=%s blocked by %d conflict(s)",
				req.RecordID, len(classification.BlockingConflicts()))
			return &VenueConflictError{Classification: classification}
		}

		if classification.HasConflicts() {
			token := conflictcheck.AckToken(req.RecordID, req.Sessions, status)
			if req.AckToken == nil || *req.AckToken != token {
				uc.logger.Info("UpdateSessions: record=%s has %d warning(s), acknowledgment required",
					req.RecordID, len(classification.Warnings()))
				return &WarningsNotAcknowledgedError{
					Classification: classification,
					AckToken:       token,
				}
			}
			acknowledged = classification.Warnings()
			uc.logger.Info("UpdateSessions: record=%s warnings acknowledged, proceeding", req.RecordID)
		}

		return uc.replaceSessions(txCtx, req.Kind, req.RecordID, req.Sessions)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateSessions: record=%s sessions updated", req.RecordID)

	return &Response{
		RecordID: req.RecordID,
		Kind:     req.Kind,
		Sessions: req.Sessions,
		Warnings: acknowledged,
	}, nil
}

// recordStatus получает текущий статус записи нужного типа
func (uc *UseCase) recordStatus(ctx context.Context, kind domain.RecordKind, id string) (domain.RecordStatus, error) {
	switch kind {
	case domain.KindEnquiry:
		enq, err := uc.enquiryRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, enquiryRepo.ErrEnquiryNotFound) {
				return "", ErrRecordNotFound
			}
			uc.logger.Error("UpdateSessions: failed to get enquiry id=%s: %v", id, err)
			return "", fmt.Errorf("%w: failed to get enquiry: %v", ErrInternal, err)
		}
		return enq.Status, nil
	case domain.KindBooking:
		bk, err := uc.bookingRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return "", ErrRecordNotFound
			}
			uc.logger.Error("UpdateSessions: failed to get booking id=%s: %v", id, err)
			return "", fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		return bk.Status, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
}

// replaceSessions заменяет сессии в репозитории нужного типа
func (uc *UseCase) replaceSessions(ctx context.Context, kind domain.RecordKind, id string, sessions []domain.Session) error {
	var err error
	switch kind {
	case domain.KindEnquiry:
		err = uc.enquiryRepo.ReplaceSessions(ctx, id, sessions)
	case domain.KindBooking:
		err = uc.bookingRepo.ReplaceSessions(ctx, id, sessions)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
	if err != nil {
		uc.logger.Error("UpdateSessions: failed to replace sessions for %s id=%s: %v", kind, id, err)
		return fmt.Errorf("%w: failed to replace sessions: %v", ErrInternal, err)
	}
	return nil
}

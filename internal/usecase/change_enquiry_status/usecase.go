package change_enquiry_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/conflictcheck"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	enquiryRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/enquiry"
)

// workflowName имя workflow для бизнес-метрик
const workflowName = "change_enquiry_status"

// errSnapshotUnavailable внутренний маркер: снапшот записей получить не
// удалось, транзакция прервана, применяется fail-open политика
var errSnapshotUnavailable = errors.New("change_enquiry_status: records snapshot unavailable")

// UseCase use case смены статуса заявки.
//
// Переход в converted/booked проходит через проверку конфликтов:
//   - блокирующий конфликт → переход отклоняется, статус не меняется;
//   - только warnings → переход требует bypass-once подтверждения:
//     клиент получает токен, показывает предупреждения пользователю и
//     повторяет запрос с токеном. Токен привязан к конкретной оценке
//     (заявка + сессии + целевой статус) и нигде не хранится.
//
// Остальные переходы выполняются без проверки.
type UseCase struct {
	enquiryRepo  EnquiryRepository
	recordSource RecordSource
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	enquiryRepo EnquiryRepository,
	recordSource RecordSource,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		enquiryRepo:  enquiryRepo,
		recordSource: recordSource,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case смены статуса заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ChangeEnquiryStatus: enquiry=%s, target=%s", req.EnquiryID, req.TargetStatus)

	// 1. Валидация входных данных
	if req.EnquiryID == "" {
		return nil, fmt.Errorf("%w: enquiryID is required", ErrInvalidInput)
	}
	if !domain.IsValidEnquiryStatus(req.TargetStatus) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.TargetStatus)
	}

	// 2. Получаем заявку
	enquiry, err := uc.enquiryRepo.GetByID(ctx, req.EnquiryID)
	if err != nil {
		if errors.Is(err, enquiryRepo.ErrEnquiryNotFound) {
			uc.logger.Warn("ChangeEnquiryStatus: enquiry id=%s not found", req.EnquiryID)
			return nil, ErrEnquiryNotFound
		}
		uc.logger.Error("ChangeEnquiryStatus: failed to get enquiry id=%s: %v", req.EnquiryID, err)
		return nil, fmt.Errorf("%w: failed to get enquiry: %v", ErrInternal, err)
	}

	// 3. Переходы без гейта выполняются сразу
	if !domain.IsGatedEnquiryTarget(req.TargetStatus) {
		if err := uc.enquiryRepo.UpdateStatus(ctx, req.EnquiryID, req.TargetStatus); err != nil {
			uc.logger.Error("ChangeEnquiryStatus: failed to update status: %v", err)
			return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
		uc.logger.Info("ChangeEnquiryStatus: enquiry=%s -> %s", req.EnquiryID, req.TargetStatus)
		return &Response{EnquiryID: req.EnquiryID, Status: req.TargetStatus}, nil
	}

	// 4. Гейт для converted/booked: проверка конфликтов + смена статуса
	// в сериализуемой транзакции
	var acknowledged []domain.Conflict

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		others, err := uc.recordSource.ListAll(txCtx)
		if err != nil {
			// Прерываем транзакцию: fail-open обрабатывается снаружи
			uc.logger.Error("ChangeEnquiryStatus: failed to list records: %v", err)
			return fmt.Errorf("%w: %v", errSnapshotUnavailable, err)
		}

		classification := conflictcheck.Classify(conflictcheck.Candidate{
			ID:       enquiry.ID,
			Sessions: enquiry.Sessions,
		}, others)

		uc.metrics.ObserveConflictCheck(workflowName,
			len(classification.BlockingConflicts()), len(classification.Warnings()))

		if classification.Blocking {
			uc.logger.Warn("ChangeEnquiryStatus: enquiry=%s transition to %s blocked by %d conflict(s)",
				req.EnquiryID, req.TargetStatus, len(classification.BlockingConflicts()))
			return &TransitionBlockedError{Classification: classification}
		}

		if classification.HasConflicts() {
			token := conflictcheck.AckToken(enquiry.ID, enquiry.Sessions, req.TargetStatus)
			if req.AckToken == nil || *req.AckToken != token {
				uc.logger.Info("ChangeEnquiryStatus: enquiry=%s has %d warning(s), acknowledgment required",
					req.EnquiryID, len(classification.Warnings()))
				return &WarningsNotAcknowledgedError{
					Classification: classification,
					AckToken:       token,
				}
			}
			// Токен совпал: пользователь уже видел ровно эту оценку
			acknowledged = classification.Warnings()
			uc.logger.Info("ChangeEnquiryStatus: enquiry=%s warnings acknowledged, proceeding", req.EnquiryID)
		}

		if err := uc.enquiryRepo.UpdateStatus(txCtx, req.EnquiryID, req.TargetStatus); err != nil {
			uc.logger.Error("ChangeEnquiryStatus: failed to update status: %v", err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		return nil
	})

	// 5. Fail-open: если снапшот получить не удалось, предупреждаем и
	// выполняем переход без проверки. Рискованная, но сознательно
	// сохраненная политика продукта.
	if errors.Is(err, errSnapshotUnavailable) {
		uc.logger.Warn("ChangeEnquiryStatus: conflict check unavailable, proceeding fail-open for enquiry=%s", req.EnquiryID)

		if err := uc.enquiryRepo.UpdateStatus(ctx, req.EnquiryID, req.TargetStatus); err != nil {
			uc.logger.Error("ChangeEnquiryStatus: fail-open update failed: %v", err)
			return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		return &Response{
			EnquiryID:            req.EnquiryID,
			Status:               req.TargetStatus,
			ConflictCheckSkipped: true,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ChangeEnquiryStatus: enquiry=%s -> %s", req.EnquiryID, req.TargetStatus)

	return &Response{
		EnquiryID: req.EnquiryID,
		Status:    req.TargetStatus,
		Warnings:  acknowledged,
	}, nil
}

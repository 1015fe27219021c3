package check_conflicts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/conflictcheck"
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// workflowName имя workflow для бизнес-метрик
const workflowName = "check_conflicts"

// UseCase use case предварительной проверки конфликтов.
// Ничего не блокирует и не изменяет: используется UI для подсветки
// конфликтов до отправки формы.
type UseCase struct {
	recordSource RecordSource
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(recordSource RecordSource, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		recordSource: recordSource,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет проверку конфликтов для переданных сессий
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflicts: record=%q, sessions=%d", req.RecordID, len(req.Sessions))

	// 1. Валидация входных данных
	if len(req.Sessions) > domain.MaxSessionsPerRecord {
		return nil, fmt.Errorf("%w: too many sessions (max %d)", ErrInvalidInput, domain.MaxSessionsPerRecord)
	}

	// 2. Получаем снапшот всех записей
	others, err := uc.recordSource.ListAll(ctx)
	if err != nil {
		uc.logger.Error("CheckConflicts: failed to list records: %v", err)
		return nil, fmt.Errorf("%w: failed to list records: %v", ErrInternal, err)
	}

	// 3. Классифицируем конфликты
	classification := conflictcheck.Classify(conflictcheck.Candidate{
		ID:       req.RecordID,
		Sessions: req.Sessions,
	}, others)

	uc.metrics.ObserveConflictCheck(workflowName,
		len(classification.BlockingConflicts()), len(classification.Warnings()))

	uc.logger.Info("CheckConflicts: record=%q, blocking=%t, conflicts=%d",
		req.RecordID, classification.Blocking, len(classification.Conflicts))

	// 4. Форматируем отчет
	return &Response{
		Blocking:  classification.Blocking,
		Conflicts: classification.Conflicts,
		Report:    conflictcheck.FormatReport(classification),
	}, nil
}

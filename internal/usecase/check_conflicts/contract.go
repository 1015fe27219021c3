package check_conflicts

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// RecordSource интерфейс источника записей для проверки конфликтов
type RecordSource interface {
	ListAll(ctx context.Context) ([]*domain.Record, error)
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

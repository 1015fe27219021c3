package update_sessions

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/conflictcheck"
)

var (
	// ErrRecordNotFound возвращается, когда запись не найдена
	ErrRecordNotFound = errors.New("update_sessions: record not found")

	// ErrInvalidKind возвращается при неизвестном типе записи
	ErrInvalidKind = errors.New("update_sessions: invalid record kind")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_sessions: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_sessions: internal error")
)

// VenueConflictError возвращается, когда новые сессии блокирующе
// конфликтуют с занятой площадкой. Сессии записи не меняются.
type VenueConflictError struct {
	Classification conflictcheck.Classification
}

func (e *VenueConflictError) Error() string {
	return fmt.Sprintf("update_sessions: blocked by %d conflict(s)",
		len(e.Classification.BlockingConflicts()))
}

// WarningsNotAcknowledgedError возвращается, когда по новым сессиям есть
// warning-конфликты без bypass-once подтверждения.
type WarningsNotAcknowledgedError struct {
	Classification conflictcheck.Classification
	AckToken       string
}

func (e *WarningsNotAcknowledgedError) Error() string {
	return fmt.Sprintf("update_sessions: %d warning conflict(s) require acknowledgment",
		len(e.Classification.Warnings()))
}

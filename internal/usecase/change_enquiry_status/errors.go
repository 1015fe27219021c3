package change_enquiry_status

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/conflictcheck"
)

var (
	// ErrEnquiryNotFound возвращается, когда заявка не найдена
	ErrEnquiryNotFound = errors.New("change_enquiry_status: enquiry not found")

	// ErrInvalidStatus возвращается при недопустимом целевом статусе
	ErrInvalidStatus = errors.New("change_enquiry_status: invalid target status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("change_enquiry_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("change_enquiry_status: internal error")
)

// TransitionBlockedError возвращается, когда переход в converted/booked
// невозможен: площадка уже занята другой записью. Состояние заявки
// не меняется.
type TransitionBlockedError struct {
	Classification conflictcheck.Classification
}

func (e *TransitionBlockedError) Error() string {
	return fmt.Sprintf("change_enquiry_status: transition blocked by %d conflict(s)",
		len(e.Classification.BlockingConflicts()))
}

// WarningsNotAcknowledgedError возвращается, когда по переходу есть
// warning-конфликты, а клиент не подтвердил их просмотр. Несет токен,
// который клиент должен вернуть при повторной отправке (bypass-once:
// токен действует только для идентичной оценки).
type WarningsNotAcknowledgedError struct {
	Classification conflictcheck.Classification
	AckToken       string
}

func (e *WarningsNotAcknowledgedError) Error() string {
	return fmt.Sprintf("change_enquiry_status: %d warning conflict(s) require acknowledgment",
		len(e.Classification.Warnings()))
}

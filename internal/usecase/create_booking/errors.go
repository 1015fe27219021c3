package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/conflictcheck"
)

var (
	// ErrClientNotFound возвращается, когда клиент не найден в справочнике
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// VenueConflictError возвращается, когда сессии бронирования блокирующе
// конфликтуют с уже занятой площадкой. Несет полную классификацию для
// структурированного HTTP 409 ответа.
type VenueConflictError struct {
	Classification conflictcheck.Classification
}

func (e *VenueConflictError) Error() string {
	return fmt.Sprintf("create_booking: venue conflict, %d blocking conflict(s)",
		len(e.Classification.BlockingConflicts()))
}

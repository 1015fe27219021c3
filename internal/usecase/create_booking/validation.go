package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Полнота каждой сессии здесь НЕ проверяется: неполные сессии законны
// и молча пропускаются классификатором. Требуется лишь, чтобы хотя бы
// одна сессия была полной — бронировать "ничего" нельзя.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if len(req.Sessions) == 0 {
		return fmt.Errorf("%w: at least one session is required", ErrInvalidInput)
	}

	if len(req.Sessions) > domain.MaxSessionsPerRecord {
		return fmt.Errorf("%w: too many sessions (max %d)", ErrInvalidInput, domain.MaxSessionsPerRecord)
	}

	hasComplete := false
	for _, s := range req.Sessions {
		if s.IsComplete() {
			hasComplete = true
			break
		}
	}
	if !hasComplete {
		return fmt.Errorf("%w: at least one complete session is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long (max %d)", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

package get_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         string                    `json:"id"`
	UserID     int64                     `json:"userId"`
	ClientID   int64                     `json:"clientId"`
	ClientName string                    `json:"clientName"`
	Status     string                    `json:"status"`
	Sessions   []handlers.SessionPayload `json:"sessions"`
	Notes      *string                   `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(bk *domain.Booking) *BookingResponse {
	sessions := make([]handlers.SessionPayload, 0, len(bk.Sessions))
	for _, s := range bk.Sessions {
		sessions = append(sessions, handlers.SessionPayload{
			Venue:       s.Venue,
			SessionDate: s.SessionDate,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
		})
	}

	var cancelledAt *string
	if bk.CancelledAt != nil {
		v := bk.CancelledAt.Format(time.RFC3339)
		cancelledAt = &v
	}

	return &BookingResponse{
		ID:                 bk.ID,
		UserID:             bk.UserID,
		ClientID:           bk.ClientID,
		ClientName:         bk.ClientName,
		Status:             string(bk.Status),
		Sessions:           sessions,
		Notes:              bk.Notes,
		CancellationReason: bk.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          bk.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          bk.UpdatedAt.Format(time.RFC3339),
	}
}

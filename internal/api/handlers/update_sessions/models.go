package update_sessions

import (
	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	updateSessions "github.com/m04kA/SMC-VenueService/internal/usecase/update_sessions"
)

// UpdateSessionsRequest HTTP request model
type UpdateSessionsRequest struct {
	Sessions []handlers.SessionPayload `json:"sessions"`
	AckToken *string                   `json:"ackToken,omitempty"`
}

// UpdateSessionsResponse HTTP response model
type UpdateSessionsResponse struct {
	RecordID string                     `json:"recordId"`
	Kind     string                     `json:"kind"`
	Sessions []handlers.SessionPayload  `json:"sessions"`
	Warnings []handlers.ConflictPayload `json:"warnings,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateSessionsRequest) ToUseCaseRequest(kind, recordID string) *updateSessions.Request {
	sessions := make([]domain.Session, 0, len(r.Sessions))
	for _, s := range r.Sessions {
		sessions = append(sessions, domain.Session{
			Venue:       s.Venue,
			SessionDate: s.SessionDate,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
		})
	}
	return &updateSessions.Request{
		Kind:     domain.RecordKind(kind),
		RecordID: recordID,
		Sessions: sessions,
		AckToken: r.AckToken,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSessions.Response) *UpdateSessionsResponse {
	sessions := make([]handlers.SessionPayload, 0, len(resp.Sessions))
	for _, s := range resp.Sessions {
		sessions = append(sessions, handlers.SessionPayload{
			Venue:       s.Venue,
			SessionDate: s.SessionDate,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
		})
	}
	return &UpdateSessionsResponse{
		RecordID: resp.RecordID,
		Kind:     string(resp.Kind),
		Sessions: sessions,
		Warnings: handlers.ToConflictPayloads(resp.Warnings),
	}
}

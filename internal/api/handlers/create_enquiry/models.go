package create_enquiry

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// CreateEnquiryRequest HTTP request model
type CreateEnquiryRequest struct {
	ClientID int64                     `json:"clientId"`
	Sessions []handlers.SessionPayload `json:"sessions"`
	Notes    *string                   `json:"notes,omitempty"`
}

// EnquiryResponse HTTP response model
type EnquiryResponse struct {
	ID         string                    `json:"id"`
	ClientID   int64                     `json:"clientId"`
	ClientName string                    `json:"clientName"`
	Status     string                    `json:"status"`
	Sessions   []handlers.SessionPayload `json:"sessions"`
	Notes      *string                   `json:"notes,omitempty"`
	CreatedAt  string                    `json:"createdAt"`
	UpdatedAt  string                    `json:"updatedAt"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CreateEnquiryRequest) ToDomain() *domain.Enquiry {
	sessions := make([]domain.Session, 0, len(r.Sessions))
	for _, s := range r.Sessions {
		sessions = append(sessions, domain.Session{
			Venue:       s.Venue,
			SessionDate: s.SessionDate,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
		})
	}
	return &domain.Enquiry{
		ClientID: r.ClientID,
		Sessions: sessions,
		Notes:    r.Notes,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(enq *domain.Enquiry) *EnquiryResponse {
	sessions := make([]handlers.SessionPayload, 0, len(enq.Sessions))
	for _, s := range enq.Sessions {
		sessions = append(sessions, handlers.SessionPayload{
			Venue:       s.Venue,
			SessionDate: s.SessionDate,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
		})
	}
	return &EnquiryResponse{
		ID:         enq.ID,
		ClientID:   enq.ClientID,
		ClientName: enq.ClientName,
		Status:     string(enq.Status),
		Sessions:   sessions,
		Notes:      enq.Notes,
		CreatedAt:  enq.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  enq.UpdatedAt.Format(time.RFC3339),
	}
}

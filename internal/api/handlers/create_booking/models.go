package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	createBooking "github.com/m04kA/SMC-VenueService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserID   int64                     `json:"userId"`
	ClientID int64                     `json:"clientId"`
	Sessions []handlers.SessionPayload `json:"sessions"`
	Notes    *string                   `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         string                     `json:"id"`
	UserID     int64                      `json:"userId"`
	ClientID   int64                      `json:"clientId"`
	ClientName string                     `json:"clientName"`
	Status     string                     `json:"status"`
	Sessions   []handlers.SessionPayload  `json:"sessions"`
	Notes      *string                    `json:"notes,omitempty"`
	Warnings   []handlers.ConflictPayload `json:"warnings,omitempty"`
	CreatedAt  string                     `json:"createdAt"`
	UpdatedAt  string                     `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	sessions := make([]domain.Session, 0, len(r.Sessions))
	for _, s := range r.Sessions {
		sessions = append(sessions, domain.Session{
			Venue:       s.Venue,
			SessionDate: s.SessionDate,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
		})
	}
	return &createBooking.Request{
		UserID:   r.UserID,
		ClientID: r.ClientID,
		Sessions: sessions,
		Notes:    r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	sessions := make([]handlers.SessionPayload, 0, len(resp.Sessions))
	for _, s := range resp.Sessions {
		sessions = append(sessions, handlers.SessionPayload{
			Venue:       s.Venue,
			SessionDate: s.SessionDate,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
		})
	}
	return &BookingResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		ClientID:   resp.ClientID,
		ClientName: resp.ClientName,
		Status:     resp.Status,
		Sessions:   sessions,
		Notes:      resp.Notes,
		Warnings:   handlers.ToConflictPayloads(resp.Warnings),
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}

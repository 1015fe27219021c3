package check_conflicts

import (
	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	checkConflicts "github.com/m04kA/SMC-VenueService/internal/usecase/check_conflicts"
)

// CheckConflictsRequest HTTP request model
type CheckConflictsRequest struct {
	RecordID string                    `json:"recordId,omitempty"`
	Sessions []handlers.SessionPayload `json:"sessions"`
}

// CheckConflictsResponse HTTP response model
type CheckConflictsResponse struct {
	Blocking  bool                       `json:"blocking"`
	Title     string                     `json:"title"`
	Conflicts []handlers.ConflictPayload `json:"conflicts"`
	Report    []string                   `json:"report"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictsRequest) ToUseCaseRequest() *checkConflicts.Request {
	sessions := make([]domain.Session, 0, len(r.Sessions))
	for _, s := range r.Sessions {
		sessions = append(sessions, domain.Session{
			Venue:       s.Venue,
			SessionDate: s.SessionDate,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
		})
	}
	return &checkConflicts.Request{
		RecordID: r.RecordID,
		Sessions: sessions,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflicts.Response) *CheckConflictsResponse {
	return &CheckConflictsResponse{
		Blocking:  resp.Blocking,
		Title:     resp.Report.Title,
		Conflicts: handlers.ToConflictPayloads(resp.Conflicts),
		Report:    resp.Report.Lines,
	}
}

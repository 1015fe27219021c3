package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/conflictcheck"
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// SessionPayload сессия в HTTP ответе
type SessionPayload struct {
	Venue       string `json:"venue"`
	SessionDate string `json:"sessionDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// ExistingRecordPayload запись, с которой обнаружен конфликт
type ExistingRecordPayload struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Status     string `json:"status"`
	ClientName string `json:"clientName"`
}

// ConflictPayload один конфликт в структурированном 409 ответе
type ConflictPayload struct {
	Severity           string                `json:"severity"`
	Venue              string                `json:"venue"`
	Date               string                `json:"date"`
	ExistingRecord     ExistingRecordPayload `json:"existingRecord"`
	ExistingSession    SessionPayload        `json:"existingSession"`
	ConflictingSession SessionPayload        `json:"conflictingSession"`
}

// ConflictResponse структурированный ответ о конфликтах площадки.
// Blocking конфликты приходят с RequiresAck=false (отказ окончательный),
// warning-оценки — с RequiresAck=true и токеном для повторной отправки.
type ConflictResponse struct {
	Message     string            `json:"message"`
	Blocking    bool              `json:"blocking"`
	RequiresAck bool              `json:"requiresAck,omitempty"`
	AckToken    string            `json:"ackToken,omitempty"`
	Conflicts   []ConflictPayload `json:"conflicts"`
	Report      []string          `json:"report"`
}

func toSessionPayload(s domain.Session) SessionPayload {
	return SessionPayload{
		Venue:       s.Venue,
		SessionDate: s.SessionDate,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
	}
}

// ToConflictPayloads конвертирует конфликты классификатора в HTTP модель
func ToConflictPayloads(conflicts []domain.Conflict) []ConflictPayload {
	result := make([]ConflictPayload, 0, len(conflicts))
	for _, c := range conflicts {
		result = append(result, ConflictPayload{
			Severity: string(c.Severity),
			Venue:    c.Venue,
			Date:     c.Date,
			ExistingRecord: ExistingRecordPayload{
				ID:         c.OtherID,
				Kind:       string(c.OtherKind),
				Status:     string(c.OtherStatus),
				ClientName: c.OtherClientName,
			},
			ExistingSession:    toSessionPayload(c.OtherSession),
			ConflictingSession: toSessionPayload(c.CandidateSession),
		})
	}
	return result
}

// RespondVenueConflict пишет 409 со структурированным конфликтным payload
func RespondVenueConflict(w http.ResponseWriter, classification conflictcheck.Classification, ackToken string) {
	report := conflictcheck.FormatReport(classification)

	RespondJSON(w, http.StatusConflict, ConflictResponse{
		Message:     report.Title,
		Blocking:    classification.Blocking,
		RequiresAck: !classification.Blocking,
		AckToken:    ackToken,
		Conflicts:   ToConflictPayloads(classification.Conflicts),
		Report:      report.Lines,
	})
}

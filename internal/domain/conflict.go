package domain

// ConflictSeverity classifies how a detected overlap affects the candidate.
type ConflictSeverity string

const (
	// SeverityBlocking: the other record already won the venue
	// (converted enquiry or committed booking). The transition must be refused.
	SeverityBlocking ConflictSeverity = "blocking"

	// SeverityWarning: the other record competes for the venue but has not
	// committed it yet. The caller may proceed after acknowledgment.
	SeverityWarning ConflictSeverity = "warning"
)

// Conflict is a derived pairing of a candidate session with an overlapping
// session of another record. It is never stored.
type Conflict struct {
	Severity         ConflictSeverity
	Venue            string
	Date             string // YYYY-MM-DD
	CandidateSession Session
	OtherSession     Session
	OtherID          string
	OtherKind        RecordKind
	OtherStatus      RecordStatus
	OtherClientName  string
}

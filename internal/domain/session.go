package domain

// Session is a time-boxed occupation of a venue attached to an enquiry or
// booking. All fields are plain strings as supplied by the CRM front-end:
// SessionDate is either "YYYY-MM-DD" or a full ISO timestamp (the calendar
// day component is what matters), StartTime and EndTime are "HH:MM".
//
// Any field may be missing while the user is still editing; such sessions
// are excluded from conflict evaluation rather than rejected.
type Session struct {
	Venue       string `json:"venue"`
	SessionDate string `json:"sessionDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// IsComplete reports whether the session carries every field required for
// conflict evaluation. It says nothing about whether the values parse.
func (s Session) IsComplete() bool {
	return s.Venue != "" && s.SessionDate != "" && s.StartTime != "" && s.EndTime != ""
}

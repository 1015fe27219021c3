package conflictcheck

import "fmt"

// Report is a human-readable rendering of a classification, one line per
// conflict plus an overall verdict.
type Report struct {
	Title    string
	Blocking bool
	Lines    []string
}

const (
	titleBlocking = "Площадка занята: бронирование невозможно"
	titleWarning  = "Внимание: по площадке есть конкурирующие заявки"
)

// FormatReport produces one line per conflict:
//
//	"<date> • <venue> • <candStart>-<candEnd> ↔ <otherStart>-<otherEnd> (<client> - <status>)"
//
// The title is a hard stop when any blocking conflict exists and a soft
// warning otherwise. Pure formatting, no error conditions.
func FormatReport(c Classification) Report {
	lines := make([]string, 0, len(c.Conflicts))
	for _, conflict := range c.Conflicts {
		lines = append(lines, fmt.Sprintf("%s • %s • %s-%s ↔ %s-%s (%s - %s)",
			conflict.Date,
			conflict.Venue,
			conflict.CandidateSession.StartTime,
			conflict.CandidateSession.EndTime,
			conflict.OtherSession.StartTime,
			conflict.OtherSession.EndTime,
			conflict.OtherClientName,
			conflict.OtherStatus,
		))
	}

	title := titleWarning
	if c.Blocking {
		title = titleBlocking
	}

	return Report{
		Title:    title,
		Blocking: c.Blocking,
		Lines:    lines,
	}
}

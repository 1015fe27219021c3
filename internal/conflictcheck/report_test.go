package conflictcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

func TestFormatReport(t *testing.T) {
	classification := Classify(
		Candidate{
			ID:       "enq-1",
			Sessions: []domain.Session{hallASession("10:00", "12:00")},
		},
		[]*domain.Record{
			otherRecord("bk-1", domain.KindBooking, domain.StatusBooked, hallASession("11:00", "13:00")),
		},
	)

	report := FormatReport(classification)

	assert.True(t, report.Blocking)
	assert.Equal(t, titleBlocking, report.Title)
	require.Len(t, report.Lines, 1)
	assert.Equal(t,
		"2025-06-01 • Hall A • 10:00-12:00 ↔ 11:00-13:00 (ООО Ромашка - booked)",
		report.Lines[0],
	)
}

func TestFormatReportWarningTitle(t *testing.T) {
	classification := Classify(
		Candidate{
			ID:       "enq-1",
			Sessions: []domain.Session{hallASession("10:00", "12:00")},
		},
		[]*domain.Record{
			otherRecord("enq-2", domain.KindEnquiry, domain.StatusNew, hallASession("11:00", "13:00")),
		},
	)

	report := FormatReport(classification)

	assert.False(t, report.Blocking)
	assert.Equal(t, titleWarning, report.Title)
	assert.Len(t, report.Lines, 1)
}

func TestFormatReportEmpty(t *testing.T) {
	report := FormatReport(Classification{Conflicts: []domain.Conflict{}})

	assert.False(t, report.Blocking)
	assert.Empty(t, report.Lines)
}

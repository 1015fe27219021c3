package conflictcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

func hallASession(start, end string) domain.Session {
	return domain.Session{Venue: "Hall A", SessionDate: "2025-06-01", StartTime: start, EndTime: end}
}

func otherRecord(id string, kind domain.RecordKind, status domain.RecordStatus, sessions ...domain.Session) *domain.Record {
	return &domain.Record{
		ID:         id,
		Kind:       kind,
		Status:     status,
		ClientName: "ООО Ромашка",
		Sessions:   sessions,
	}
}

func TestClassifyStatusGating(t *testing.T) {
	candidate := Candidate{
		ID:       "enq-1",
		Sessions: []domain.Session{hallASession("10:00", "12:00")},
	}
	overlapping := hallASession("11:00", "13:00")

	tests := []struct {
		name         string
		otherKind    domain.RecordKind
		otherStatus  domain.RecordStatus
		wantBlocking bool
		wantCount    int
		wantSeverity domain.ConflictSeverity
	}{
		// Scenario A: активное бронирование всегда блокирует
		{"booked booking blocks", domain.KindBooking, domain.StatusBooked, true, 1, domain.SeverityBlocking},
		{"converted enquiry blocks", domain.KindEnquiry, domain.StatusConverted, true, 1, domain.SeverityBlocking},
		{"booked enquiry blocks", domain.KindEnquiry, domain.StatusBooked, true, 1, domain.SeverityBlocking},
		// Scenario B: незакоммиченный конкурент — только warning
		{"new enquiry warns", domain.KindEnquiry, domain.StatusNew, false, 1, domain.SeverityWarning},
		{"ongoing enquiry warns", domain.KindEnquiry, domain.StatusOngoing, false, 1, domain.SeverityWarning},
		{"quotation_sent enquiry warns", domain.KindEnquiry, domain.StatusQuotationSent, false, 1, domain.SeverityWarning},
		// Scenario C: терминальные статусы не участвуют вообще
		{"lost enquiry ignored", domain.KindEnquiry, domain.StatusLost, false, 0, ""},
		{"closed enquiry ignored", domain.KindEnquiry, domain.StatusClosed, false, 0, ""},
		{"cancelled booking ignored", domain.KindBooking, domain.StatusCancelled, false, 0, ""},
		{"closed booking ignored", domain.KindBooking, domain.StatusClosed, false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			others := []*domain.Record{otherRecord("other-1", tt.otherKind, tt.otherStatus, overlapping)}

			got := Classify(candidate, others)

			assert.Equal(t, tt.wantBlocking, got.Blocking)
			require.Len(t, got.Conflicts, tt.wantCount)
			if tt.wantCount > 0 {
				conflict := got.Conflicts[0]
				assert.Equal(t, tt.wantSeverity, conflict.Severity)
				assert.Equal(t, "Hall A", conflict.Venue)
				assert.Equal(t, "2025-06-01", conflict.Date)
				assert.Equal(t, "other-1", conflict.OtherID)
				assert.Equal(t, tt.otherStatus, conflict.OtherStatus)
				assert.Equal(t, "ООО Ромашка", conflict.OtherClientName)
			}
		})
	}
}

func TestClassifyTouchingBoundary(t *testing.T) {
	// Scenario D: граничащие сессии не конфликтуют
	candidate := Candidate{
		ID:       "enq-1",
		Sessions: []domain.Session{hallASession("10:00", "11:00")},
	}
	others := []*domain.Record{
		otherRecord("bk-1", domain.KindBooking, domain.StatusBooked, hallASession("11:00", "12:00")),
	}

	got := Classify(candidate, others)

	assert.False(t, got.Blocking)
	assert.Empty(t, got.Conflicts)
}

func TestClassifySelfExclusion(t *testing.T) {
	// Запись не конфликтует сама с собой, даже если ее собственные
	// сессии пересекаются друг с другом
	sessions := []domain.Session{
		hallASession("10:00", "12:00"),
		hallASession("11:00", "13:00"),
	}
	candidate := Candidate{ID: "enq-1", Sessions: sessions}
	others := []*domain.Record{
		otherRecord("enq-1", domain.KindEnquiry, domain.StatusBooked, sessions...),
	}

	got := Classify(candidate, others)

	assert.False(t, got.Blocking)
	assert.Empty(t, got.Conflicts)
}

func TestClassifyIncompleteCandidateSession(t *testing.T) {
	// Scenario E: неполная сессия молча пропускается, полная проверяется
	candidate := Candidate{
		ID: "enq-1",
		Sessions: []domain.Session{
			{Venue: "Hall A", SessionDate: "2025-06-01", StartTime: "10:00"}, // нет EndTime
			hallASession("10:00", "12:00"),
		},
	}
	others := []*domain.Record{
		otherRecord("bk-1", domain.KindBooking, domain.StatusBooked, hallASession("11:00", "13:00")),
	}

	got := Classify(candidate, others)

	assert.True(t, got.Blocking)
	require.Len(t, got.Conflicts, 1)
	assert.Equal(t, "12:00", got.Conflicts[0].CandidateSession.EndTime)
}

func TestClassifyAllCandidateSessionsIncomplete(t *testing.T) {
	candidate := Candidate{
		ID: "enq-1",
		Sessions: []domain.Session{
			{Venue: "Hall A", StartTime: "10:00", EndTime: "12:00"}, // нет даты
		},
	}
	others := []*domain.Record{
		otherRecord("bk-1", domain.KindBooking, domain.StatusBooked, hallASession("10:00", "12:00")),
	}

	got := Classify(candidate, others)

	assert.False(t, got.Blocking)
	assert.Empty(t, got.Conflicts)
}

func TestClassifyMixedSeverities(t *testing.T) {
	// Blocking выставляется, если есть хотя бы один blocking конфликт;
	// warnings при этом тоже попадают в выдачу
	candidate := Candidate{
		ID:       "enq-1",
		Sessions: []domain.Session{hallASession("10:00", "14:00")},
	}
	others := []*domain.Record{
		otherRecord("enq-2", domain.KindEnquiry, domain.StatusNew, hallASession("10:00", "11:00")),
		otherRecord("bk-1", domain.KindBooking, domain.StatusBooked, hallASession("12:00", "13:00")),
		otherRecord("enq-3", domain.KindEnquiry, domain.StatusLost, hallASession("10:00", "14:00")),
	}

	got := Classify(candidate, others)

	assert.True(t, got.Blocking)
	require.Len(t, got.Conflicts, 2)
	// Порядок детерминирован: по порядку others
	assert.Equal(t, domain.SeverityWarning, got.Conflicts[0].Severity)
	assert.Equal(t, "enq-2", got.Conflicts[0].OtherID)
	assert.Equal(t, domain.SeverityBlocking, got.Conflicts[1].Severity)
	assert.Equal(t, "bk-1", got.Conflicts[1].OtherID)

	assert.Len(t, got.Warnings(), 1)
	assert.Len(t, got.BlockingConflicts(), 1)
}

func TestClassifyMultipleSessionPairs(t *testing.T) {
	// Каждая пересекающаяся пара сессий дает отдельный конфликт
	candidate := Candidate{
		ID: "enq-1",
		Sessions: []domain.Session{
			hallASession("09:00", "11:00"),
			hallASession("15:00", "17:00"),
		},
	}
	others := []*domain.Record{
		otherRecord("bk-1", domain.KindBooking, domain.StatusBooked,
			hallASession("10:00", "12:00"),
			hallASession("16:00", "18:00"),
		),
	}

	got := Classify(candidate, others)

	assert.True(t, got.Blocking)
	assert.Len(t, got.Conflicts, 2)
}

func TestClassifyIdempotent(t *testing.T) {
	// Повторный вызов с теми же входами дает идентичный результат
	candidate := Candidate{
		ID:       "enq-1",
		Sessions: []domain.Session{hallASession("10:00", "12:00")},
	}
	others := []*domain.Record{
		otherRecord("bk-1", domain.KindBooking, domain.StatusBooked, hallASession("11:00", "13:00")),
		otherRecord("enq-2", domain.KindEnquiry, domain.StatusOngoing, hallASession("09:00", "10:30")),
	}

	first := Classify(candidate, others)
	second := Classify(candidate, others)

	assert.Equal(t, first, second)
}

func TestClassifyDoesNotMutateInputs(t *testing.T) {
	sessions := []domain.Session{hallASession("10:00", "12:00")}
	other := otherRecord("bk-1", domain.KindBooking, domain.StatusBooked, hallASession("11:00", "13:00"))
	otherBefore := *other

	Classify(Candidate{ID: "enq-1", Sessions: sessions}, []*domain.Record{other})

	assert.Equal(t, otherBefore, *other)
	assert.Equal(t, hallASession("10:00", "12:00"), sessions[0])
}

func TestClassifyEmptyInputs(t *testing.T) {
	got := Classify(Candidate{ID: "enq-1"}, nil)
	assert.False(t, got.Blocking)
	assert.Empty(t, got.Conflicts)

	got = Classify(Candidate{ID: "enq-1", Sessions: []domain.Session{hallASession("10:00", "12:00")}}, nil)
	assert.False(t, got.Blocking)
	assert.Empty(t, got.Conflicts)
}

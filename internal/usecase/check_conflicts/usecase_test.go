package check_conflicts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

type fakeRecordSource struct {
	records []*domain.Record
	err     error
}

func (f *fakeRecordSource) ListAll(_ context.Context) ([]*domain.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

type nopMetrics struct{}

func (nopMetrics) ObserveConflictCheck(string, int, int) {}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func hallSession(date, start, end string) domain.Session {
	return domain.Session{Venue: "Hall A", SessionDate: date, StartTime: start, EndTime: end}
}

func TestExecuteReportsBlockingAndWarnings(t *testing.T) {
	source := &fakeRecordSource{records: []*domain.Record{
		{
			ID:       "bk-1",
			Kind:     domain.KindBooking,
			Status:   domain.StatusBooked,
			Sessions: []domain.Session{hallSession("2025-06-01", "11:00", "13:00")},
		},
		{
			ID:       "enq-2",
			Kind:     domain.KindEnquiry,
			Status:   domain.StatusNew,
			Sessions: []domain.Session{hallSession("2025-06-01", "09:00", "11:00")},
		},
	}}
	uc := NewUseCase(source, nopMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Sessions: []domain.Session{hallSession("2025-06-01", "10:00", "12:00")},
	})

	require.NoError(t, err)
	assert.True(t, resp.Blocking)
	assert.Len(t, resp.Conflicts, 2)
	assert.True(t, resp.Report.Blocking)
	assert.Len(t, resp.Report.Lines, 2)
}

func TestExecuteNoConflicts(t *testing.T) {
	source := &fakeRecordSource{records: []*domain.Record{
		{
			ID:       "bk-1",
			Kind:     domain.KindBooking,
			Status:   domain.StatusBooked,
			Sessions: []domain.Session{hallSession("2025-06-02", "10:00", "12:00")},
		},
	}}
	uc := NewUseCase(source, nopMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Sessions: []domain.Session{hallSession("2025-06-01", "10:00", "12:00")},
	})

	require.NoError(t, err)
	assert.False(t, resp.Blocking)
	assert.Empty(t, resp.Conflicts)
}

func TestExecuteSelfExclusionByRecordID(t *testing.T) {
	source := &fakeRecordSource{records: []*domain.Record{
		{
			ID:       "enq-1",
			Kind:     domain.KindEnquiry,
			Status:   domain.StatusOngoing,
			Sessions: []domain.Session{hallSession("2025-06-01", "10:00", "12:00")},
		},
	}}
	uc := NewUseCase(source, nopMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RecordID: "enq-1",
		Sessions: []domain.Session{hallSession("2025-06-01", "10:00", "12:00")},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Conflicts)
}

func TestExecuteSourceFailure(t *testing.T) {
	uc := NewUseCase(&fakeRecordSource{err: errors.New("db down")}, nopMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Sessions: []domain.Session{hallSession("2025-06-01", "10:00", "12:00")},
	})

	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteTooManySessions(t *testing.T) {
	sessions := make([]domain.Session, domain.MaxSessionsPerRecord+1)
	for i := range sessions {
		sessions[i] = hallSession("2025-06-01", "10:00", "12:00")
	}
	uc := NewUseCase(&fakeRecordSource{}, nopMetrics{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Sessions: sessions})

	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

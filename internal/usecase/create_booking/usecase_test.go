package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/integrations/clientservice"
	"github.com/m04kA/SMC-VenueService/pkg/ptr"
)

type fakeBookingRepo struct {
	created *domain.Booking
	err     error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

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

type fakeClientService struct {
	client *clientservice.ClientInfo
	err    error
}

func (f *fakeClientService) GetClientWithGracefulDegradation(_ context.Context, _ int64) (*clientservice.ClientInfo, error) {
	return f.client, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func validRequest() *Request {
	return &Request{
		UserID:   1,
		ClientID: 42,
		Sessions: []domain.Session{hallSession("2025-06-01", "10:00", "12:00")},
	}
}

func newTestUseCase(repo *fakeBookingRepo, source *fakeRecordSource, client *fakeClientService) *UseCase {
	return NewUseCase(repo, source, client, fakeTxManager{}, nopMetrics{}, nopLogger{})
}

func TestExecuteCreatesBookingWithClientName(t *testing.T) {
	repo := &fakeBookingRepo{}
	client := &fakeClientService{client: &clientservice.ClientInfo{
		ID:   42,
		Name: "Иван Петров",
	}}
	uc := newTestUseCase(repo, &fakeRecordSource{}, client)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	assert.Equal(t, "Иван Петров", resp.ClientName)
	assert.Empty(t, resp.Warnings)
	require.NotNil(t, repo.created)
	assert.Equal(t, resp.ID, repo.created.ID)
}

func TestExecuteBlockedByCommittedRecord(t *testing.T) {
	repo := &fakeBookingRepo{}
	source := &fakeRecordSource{records: []*domain.Record{
		{
			ID:       "bk-1",
			Kind:     domain.KindBooking,
			Status:   domain.StatusBooked,
			Sessions: []domain.Session{hallSession("2025-06-01", "11:00", "13:00")},
		},
	}}
	uc := newTestUseCase(repo, source, &fakeClientService{client: &clientservice.ClientInfo{ID: 42}})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.Nil(t, resp)
	var conflictErr *VenueConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.True(t, conflictErr.Classification.Blocking)

	// Бронирование не создано
	assert.Nil(t, repo.created)
}

func TestExecuteWarningsDoNotStopCreation(t *testing.T) {
	repo := &fakeBookingRepo{}
	source := &fakeRecordSource{records: []*domain.Record{
		{
			ID:       "enq-1",
			Kind:     domain.KindEnquiry,
			Status:   domain.StatusOngoing,
			Sessions: []domain.Session{hallSession("2025-06-01", "11:00", "13:00")},
		},
	}}
	uc := newTestUseCase(repo, source, &fakeClientService{client: &clientservice.ClientInfo{ID: 42}})

	resp, err := uc.Execute(context.Background(), validRequest())

	// Конкурирующая заявка не мешает созданию, но попадает в ответ
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, domain.SeverityWarning, resp.Warnings[0].Severity)
	assert.Equal(t, "enq-1", resp.Warnings[0].OtherID)
}

func TestExecuteTouchingSessionsDoNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{}
	source := &fakeRecordSource{records: []*domain.Record{
		{
			ID:       "bk-1",
			Kind:     domain.KindBooking,
			Status:   domain.StatusBooked,
			Sessions: []domain.Session{hallSession("2025-06-01", "12:00", "14:00")},
		},
	}}
	uc := newTestUseCase(repo, source, &fakeClientService{client: &clientservice.ClientInfo{ID: 42}})

	// Кандидат заканчивается ровно там, где начинается бронирование
	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Warnings)
	assert.NotNil(t, repo.created)
}

func TestExecuteDegradedClientDirectory(t *testing.T) {
	repo := &fakeBookingRepo{}
	client := &fakeClientService{err: clientservice.ErrServiceDegraded}
	uc := newTestUseCase(repo, &fakeRecordSource{}, client)

	resp, err := uc.Execute(context.Background(), validRequest())

	// Справочник недоступен: бронирование создается без имени клиента
	require.NoError(t, err)
	assert.Empty(t, resp.ClientName)
	require.NotNil(t, repo.created)
}

func TestExecuteClientNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRecordSource{},
		&fakeClientService{err: clientservice.ErrClientNotFound})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecuteValidation(t *testing.T) {
	longNotes := make([]byte, domain.MaxNotesLength+1)
	for i := range longNotes {
		longNotes[i] = 'x'
	}

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero userID", &Request{UserID: 0, ClientID: 42, Sessions: []domain.Session{hallSession("2025-06-01", "10:00", "12:00")}}},
		{"zero clientID", &Request{UserID: 1, ClientID: 0, Sessions: []domain.Session{hallSession("2025-06-01", "10:00", "12:00")}}},
		{"no sessions", &Request{UserID: 1, ClientID: 42}},
		{"only incomplete sessions", &Request{UserID: 1, ClientID: 42, Sessions: []domain.Session{
			{Venue: "Hall A", SessionDate: "2025-06-01"},
		}}},
		{"notes too long", &Request{UserID: 1, ClientID: 42,
			Sessions: []domain.Session{hallSession("2025-06-01", "10:00", "12:00")},
			Notes:    ptr.Ptr(string(longNotes)),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, &fakeRecordSource{},
				&fakeClientService{client: &clientservice.ClientInfo{ID: 42}})

			resp, err := uc.Execute(context.Background(), tt.req)

			require.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecuteIncompleteSessionSkippedByConflictCheck(t *testing.T) {
	repo := &fakeBookingRepo{}
	// У конкурента две сессии: неполная пересекающаяся и полная непересекающаяся
	source := &fakeRecordSource{records: []*domain.Record{
		{
			ID:     "bk-1",
			Kind:   domain.KindBooking,
			Status: domain.StatusBooked,
			Sessions: []domain.Session{
				{Venue: "Hall A", SessionDate: "2025-06-01", StartTime: "10:00"},
				hallSession("2025-06-01", "15:00", "17:00"),
			},
		},
	}}
	uc := newTestUseCase(repo, source, &fakeClientService{client: &clientservice.ClientInfo{ID: 42}})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Warnings)
	assert.NotNil(t, repo.created)
}

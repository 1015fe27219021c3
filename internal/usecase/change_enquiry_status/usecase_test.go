package change_enquiry_status

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/conflictcheck"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	enquiryRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/enquiry"
)

type fakeEnquiryRepo struct {
	enquiry       *domain.Enquiry
	getErr        error
	updateErr     error
	updatedID     string
	updatedStatus domain.RecordStatus
	updateCalls   int
}

func (f *fakeEnquiryRepo) GetByID(_ context.Context, id string) (*domain.Enquiry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.enquiry == nil || f.enquiry.ID != id {
		return nil, enquiryRepo.ErrEnquiryNotFound
	}
	return f.enquiry, nil
}

func (f *fakeEnquiryRepo) UpdateStatus(_ context.Context, id string, status domain.RecordStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updateCalls++
	f.updatedID = id
	f.updatedStatus = status
	return nil
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

// fakeTxManager выполняет функцию без реальной транзакции
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

func testEnquiry(id string, sessions ...domain.Session) *domain.Enquiry {
	return &domain.Enquiry{
		ID:         id,
		ClientID:   42,
		ClientName: "ООО Ромашка",
		Status:     domain.StatusOngoing,
		Sessions:   sessions,
	}
}

func newTestUseCase(repo *fakeEnquiryRepo, source *fakeRecordSource) *UseCase {
	return NewUseCase(repo, source, fakeTxManager{}, nopMetrics{}, nopLogger{})
}

func TestExecuteNonGatedTransitionSkipsConflictCheck(t *testing.T) {
	repo := &fakeEnquiryRepo{enquiry: testEnquiry("enq-1", hallSession("2025-06-01", "10:00", "12:00"))}
	// Источник записей падает: для переходов без гейта он не нужен
	source := &fakeRecordSource{err: errors.New("db down")}
	uc := newTestUseCase(repo, source)

	resp, err := uc.Execute(context.Background(), &Request{
		EnquiryID:    "enq-1",
		TargetStatus: domain.StatusQuotationSent,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusQuotationSent, resp.Status)
	assert.False(t, resp.ConflictCheckSkipped)
	assert.Equal(t, domain.StatusQuotationSent, repo.updatedStatus)
}

func TestExecuteBlockingConflictRefusesTransition(t *testing.T) {
	repo := &fakeEnquiryRepo{enquiry: testEnquiry("enq-1", hallSession("2025-06-01", "10:00", "12:00"))}
	source := &fakeRecordSource{records: []*domain.Record{
		{
			ID:       "bk-1",
			Kind:     domain.KindBooking,
			Status:   domain.StatusBooked,
			Sessions: []domain.Session{hallSession("2025-06-01", "11:00", "13:00")},
		},
	}}
	uc := newTestUseCase(repo, source)

	resp, err := uc.Execute(context.Background(), &Request{
		EnquiryID:    "enq-1",
		TargetStatus: domain.StatusConverted,
	})

	require.Nil(t, resp)
	var blockedErr *TransitionBlockedError
	require.ErrorAs(t, err, &blockedErr)
	assert.True(t, blockedErr.Classification.Blocking)
	assert.Len(t, blockedErr.Classification.BlockingConflicts(), 1)

	// Статус заявки не изменился
	assert.Zero(t, repo.updateCalls)
}

func TestExecuteWarningsRequireAcknowledgment(t *testing.T) {
	enquiry := testEnquiry("enq-1", hallSession("2025-06-01", "10:00", "12:00"))
	repo := &fakeEnquiryRepo{enquiry: enquiry}
	source := &fakeRecordSource{records: []*domain.Record{
		{
			ID:       "enq-2",
			Kind:     domain.KindEnquiry,
			Status:   domain.StatusOngoing,
			Sessions: []domain.Session{hallSession("2025-06-01", "11:00", "13:00")},
		},
	}}
	uc := newTestUseCase(repo, source)

	req := &Request{EnquiryID: "enq-1", TargetStatus: domain.StatusConverted}

	// Первый запрос без токена: отказ с токеном
	resp, err := uc.Execute(context.Background(), req)
	require.Nil(t, resp)
	var ackErr *WarningsNotAcknowledgedError
	require.ErrorAs(t, err, &ackErr)
	assert.NotEmpty(t, ackErr.AckToken)
	assert.False(t, ackErr.Classification.Blocking)
	assert.Zero(t, repo.updateCalls)

	// Повтор с токеном: переход выполняется, предупреждения в ответе
	req.AckToken = &ackErr.AckToken
	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConverted, resp.Status)
	assert.Len(t, resp.Warnings, 1)
	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, domain.StatusConverted, repo.updatedStatus)
}

func TestExecuteWrongAckTokenRejected(t *testing.T) {
	repo := &fakeEnquiryRepo{enquiry: testEnquiry("enq-1", hallSession("2025-06-01", "10:00", "12:00"))}
	source := &fakeRecordSource{records: []*domain.Record{
		{
			ID:       "enq-2",
			Kind:     domain.KindEnquiry,
			Status:   domain.StatusNew,
			Sessions: []domain.Session{hallSession("2025-06-01", "11:00", "13:00")},
		},
	}}
	uc := newTestUseCase(repo, source)

	stale := conflictcheck.AckToken("enq-1",
		[]domain.Session{hallSession("2025-06-01", "09:00", "10:00")}, domain.StatusConverted)

	resp, err := uc.Execute(context.Background(), &Request{
		EnquiryID:    "enq-1",
		TargetStatus: domain.StatusConverted,
		AckToken:     &stale,
	})

	require.Nil(t, resp)
	var ackErr *WarningsNotAcknowledgedError
	require.ErrorAs(t, err, &ackErr)
	assert.NotEqual(t, stale, ackErr.AckToken)
	assert.Zero(t, repo.updateCalls)
}

func TestExecuteAckTokenInvalidatedByTargetChange(t *testing.T) {
	enquiry := testEnquiry("enq-1", hallSession("2025-06-01", "10:00", "12:00"))
	repo := &fakeEnquiryRepo{enquiry: enquiry}
	source := &fakeRecordSource{records: []*domain.Record{
		{
			ID:       "enq-2",
			Kind:     domain.KindEnquiry,
			Status:   domain.StatusOngoing,
			Sessions: []domain.Session{hallSession("2025-06-01", "11:00", "13:00")},
		},
	}}
	uc := newTestUseCase(repo, source)

	// Токен выдан для перехода в converted
	tokenForConverted := conflictcheck.AckToken(enquiry.ID, enquiry.Sessions, domain.StatusConverted)

	// Для перехода в booked он недействителен
	resp, err := uc.Execute(context.Background(), &Request{
		EnquiryID:    "enq-1",
		TargetStatus: domain.StatusBooked,
		AckToken:     &tokenForConverted,
	})

	require.Nil(t, resp)
	var ackErr *WarningsNotAcknowledgedError
	require.ErrorAs(t, err, &ackErr)
	assert.Zero(t, repo.updateCalls)
}

func TestExecuteFailOpenWhenSnapshotUnavailable(t *testing.T) {
	repo := &fakeEnquiryRepo{enquiry: testEnquiry("enq-1", hallSession("2025-06-01", "10:00", "12:00"))}
	source := &fakeRecordSource{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, source)

	resp, err := uc.Execute(context.Background(), &Request{
		EnquiryID:    "enq-1",
		TargetStatus: domain.StatusConverted,
	})

	// Переход выполнен без проверки, клиент предупрежден флагом
	require.NoError(t, err)
	assert.True(t, resp.ConflictCheckSkipped)
	assert.Equal(t, domain.StatusConverted, resp.Status)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestExecuteEnquiryNotFound(t *testing.T) {
	repo := &fakeEnquiryRepo{}
	uc := newTestUseCase(repo, &fakeRecordSource{})

	resp, err := uc.Execute(context.Background(), &Request{
		EnquiryID:    "missing",
		TargetStatus: domain.StatusConverted,
	})

	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrEnquiryNotFound)
}

func TestExecuteInvalidTargetStatus(t *testing.T) {
	repo := &fakeEnquiryRepo{enquiry: testEnquiry("enq-1")}
	uc := newTestUseCase(repo, &fakeRecordSource{})

	resp, err := uc.Execute(context.Background(), &Request{
		EnquiryID:    "enq-1",
		TargetStatus: domain.RecordStatus("archived"),
	})

	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestExecuteSelfOverlapDoesNotBlock(t *testing.T) {
	// Запись не конфликтует сама с собой: снапшот содержит саму заявку
	enquiry := testEnquiry("enq-1", hallSession("2025-06-01", "10:00", "12:00"))
	repo := &fakeEnquiryRepo{enquiry: enquiry}
	source := &fakeRecordSource{records: []*domain.Record{
		{
			ID:       "enq-1",
			Kind:     domain.KindEnquiry,
			Status:   domain.StatusOngoing,
			Sessions: enquiry.Sessions,
		},
	}}
	uc := newTestUseCase(repo, source)

	resp, err := uc.Execute(context.Background(), &Request{
		EnquiryID:    "enq-1",
		TargetStatus: domain.StatusConverted,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, domain.StatusConverted, repo.updatedStatus)
}

package records

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

type fakeEnquiryRepo struct {
	enquiries []*domain.Enquiry
	err       error
}

func (f *fakeEnquiryRepo) ListWithSessions(_ context.Context) ([]*domain.Enquiry, error) {
	return f.enquiries, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) ListWithSessions(_ context.Context) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListAllMergesEnquiriesAndBookings(t *testing.T) {
	enquiryRepo := &fakeEnquiryRepo{enquiries: []*domain.Enquiry{
		{ID: "enq-1", Status: domain.StatusNew, ClientName: "ООО Ромашка"},
		{ID: "enq-2", Status: domain.StatusLost},
	}}
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: "bk-1", Status: domain.StatusBooked, ClientName: "Иван Петров"},
	}}
	svc := NewService(enquiryRepo, bookingRepo, nopLogger{})

	records, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 3)

	// Порядок детерминирован: заявки, затем бронирования
	assert.Equal(t, "enq-1", records[0].ID)
	assert.Equal(t, domain.KindEnquiry, records[0].Kind)
	assert.Equal(t, "ООО Ромашка", records[0].ClientName)

	// Терминальные статусы не фильтруются: исключение — дело классификатора
	assert.Equal(t, "enq-2", records[1].ID)
	assert.Equal(t, domain.StatusLost, records[1].Status)

	assert.Equal(t, "bk-1", records[2].ID)
	assert.Equal(t, domain.KindBooking, records[2].Kind)
}

func TestListAllEmpty(t *testing.T) {
	svc := NewService(&fakeEnquiryRepo{}, &fakeBookingRepo{}, nopLogger{})

	records, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListAllRepositoryFailure(t *testing.T) {
	t.Run("enquiries fail", func(t *testing.T) {
		svc := NewService(&fakeEnquiryRepo{err: errors.New("db down")}, &fakeBookingRepo{}, nopLogger{})

		records, err := svc.ListAll(context.Background())

		require.Nil(t, records)
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("bookings fail", func(t *testing.T) {
		svc := NewService(&fakeEnquiryRepo{}, &fakeBookingRepo{err: errors.New("db down")}, nopLogger{})

		records, err := svc.ListAll(context.Background())

		require.Nil(t, records)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

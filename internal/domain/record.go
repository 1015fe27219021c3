package domain

import "time"

// RecordKind distinguishes the two kinds of records that own venue sessions.
type RecordKind string

const (
	KindEnquiry RecordKind = "enquiry"
	KindBooking RecordKind = "booking"
)

// RecordStatus represents the lifecycle status of an enquiry or booking.
//
// Enquiries move through: new -> quotation_sent -> ongoing -> converted/booked,
// or end in lost/closed. Bookings are booked until cancelled or closed.
type RecordStatus string

const (
	StatusNew           RecordStatus = "new"
	StatusQuotationSent RecordStatus = "quotation_sent"
	StatusOngoing       RecordStatus = "ongoing"
	StatusConverted     RecordStatus = "converted"
	StatusLost          RecordStatus = "lost"
	StatusBooked        RecordStatus = "booked"
	StatusCancelled     RecordStatus = "cancelled"
	StatusClosed        RecordStatus = "closed"
)

// Record is a read-only snapshot of an enquiry or booking as consumed by
// the conflict checker. It is never mutated by the core.
type Record struct {
	ID         string
	Kind       RecordKind
	Status     RecordStatus
	ClientName string
	Sessions   []Session
}

// Enquiry represents a sales enquiry with its venue sessions.
type Enquiry struct {
	ID         string
	ClientID   int64
	ClientName string
	Status     RecordStatus
	Sessions   []Session
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Booking represents a committed venue booking with its sessions.
type Booking struct {
	ID         string
	UserID     int64
	ClientID   int64
	ClientName string
	Status     RecordStatus
	Sessions   []Session
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Blocks reports whether an overlapping session owned by a record with this
// status must refuse the candidate's transition: the venue is already won.
func (s RecordStatus) Blocks() bool {
	return s == StatusConverted || s == StatusBooked
}

// Warns reports whether an overlapping session owned by a record with this
// status competes for the venue without having committed it yet.
func (s RecordStatus) Warns() bool {
	return s == StatusNew || s == StatusOngoing || s == StatusQuotationSent
}

// Competes reports whether a record with this status participates in
// conflict evaluation at all. Lost, closed and cancelled records never
// block or warn.
func (s RecordStatus) Competes() bool {
	return s != StatusLost && s != StatusClosed && s != StatusCancelled
}

// Snapshot returns the enquiry as a read-only conflict-check record.
func (e *Enquiry) Snapshot() *Record {
	return &Record{
		ID:         e.ID,
		Kind:       KindEnquiry,
		Status:     e.Status,
		ClientName: e.ClientName,
		Sessions:   e.Sessions,
	}
}

// Snapshot returns the booking as a read-only conflict-check record.
func (b *Booking) Snapshot() *Record {
	return &Record{
		ID:         b.ID,
		Kind:       KindBooking,
		Status:     b.Status,
		ClientName: b.ClientName,
		Sessions:   b.Sessions,
	}
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusBooked
}

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

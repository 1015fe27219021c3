package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxSessionsPerRecord        = 50
)

// EnquiryStatuses допустимые статусы заявок
var EnquiryStatuses = []RecordStatus{
	StatusNew,
	StatusQuotationSent,
	StatusOngoing,
	StatusConverted,
	StatusLost,
	StatusBooked,
	StatusClosed,
}

// BookingStatuses допустимые статусы бронирований
var BookingStatuses = []RecordStatus{
	StatusBooked,
	StatusCancelled,
	StatusClosed,
}

// GatedEnquiryTargets статусы, переход в которые требует проверки конфликтов
var GatedEnquiryTargets = []RecordStatus{
	StatusConverted,
	StatusBooked,
}

// IsValidEnquiryStatus проверяет, что статус допустим для заявки
func IsValidEnquiryStatus(s RecordStatus) bool {
	for _, v := range EnquiryStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidBookingStatus проверяет, что статус допустим для бронирования
func IsValidBookingStatus(s RecordStatus) bool {
	for _, v := range BookingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsGatedEnquiryTarget проверяет, что целевой статус требует проверки конфликтов
func IsGatedEnquiryTarget(s RecordStatus) bool {
	for _, v := range GatedEnquiryTargets {
		if v == s {
			return true
		}
	}
	return false
}

package get_enquiry

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

type EnquiriesService interface {
	GetByID(ctx context.Context, id string) (*domain.Enquiry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package enquiries

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/integrations/clientservice"
)

// EnquiryRepository интерфейс репозитория заявок
type EnquiryRepository interface {
	Create(ctx context.Context, enq *domain.Enquiry) (*domain.Enquiry, error)
	GetByID(ctx context.Context, id string) (*domain.Enquiry, error)
}

// ClientServiceClient интерфейс клиента справочника клиентов CRM
type ClientServiceClient interface {
	GetClientWithGracefulDegradation(ctx context.Context, clientID int64) (*clientservice.ClientInfo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

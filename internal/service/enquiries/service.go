package enquiries

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/integrations/clientservice"
	enquiryRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/enquiry"
)

// Service сервис для работы с заявками
type Service struct {
	enquiryRepo  EnquiryRepository
	clientClient ClientServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(enquiryRepo EnquiryRepository, clientClient ClientServiceClient, logger Logger) *Service {
	return &Service{
		enquiryRepo:  enquiryRepo,
		clientClient: clientClient,
		logger:       logger,
	}
}

// Create создает новую заявку в статусе new. Создание заявки не проходит
// через проверку конфликтов: новая заявка лишь конкурирует за площадку,
// блокирующие проверки выполняются при переходе в converted/booked.
func (s *Service) Create(ctx context.Context, enq *domain.Enquiry) (*domain.Enquiry, error) {
	if enq.ClientID <= 0 {
		return nil, fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}
	if len(enq.Sessions) > domain.MaxSessionsPerRecord {
		return nil, fmt.Errorf("%w: too many sessions (max %d)", ErrInvalidInput, domain.MaxSessionsPerRecord)
	}
	if enq.Notes != nil && len(*enq.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	// Имя клиента подтягиваем из справочника CRM с graceful degradation:
	// при недоступности справочника заявка создается с пустым именем.
	client, err := s.clientClient.GetClientWithGracefulDegradation(ctx, enq.ClientID)
	if err != nil {
		if errors.Is(err, clientservice.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("Create: failed to get client id=%d: %v", enq.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}
	if client != nil {
		enq.ClientName = client.DisplayName()
	} else {
		s.logger.Warn("Create: client directory degraded, creating enquiry client=%d without name", enq.ClientID)
	}

	enq.Status = domain.StatusNew

	created, err := s.enquiryRepo.Create(ctx, enq)
	if err != nil {
		s.logger.Error("Create: failed to create enquiry client=%d: %v", enq.ClientID, err)
		return nil, fmt.Errorf("%w: failed to create enquiry: %v", ErrInternal, err)
	}

	s.logger.Info("Create: enquiry id=%s created (client=%d, sessions=%d)",
		created.ID, created.ClientID, len(created.Sessions))
	return created, nil
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: enquiry id is required", ErrInvalidInput)
	}

	enq, err := s.enquiryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, enquiryRepo.ErrEnquiryNotFound) {
			return nil, ErrEnquiryNotFound
		}
		s.logger.Error("GetByID: failed to get enquiry id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get enquiry: %v", ErrInternal, err)
	}

	return enq, nil
}

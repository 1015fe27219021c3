package create_enquiry

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/service/enquiries"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgClientNotFound     = "клиент не найден в справочнике"
	msgInvalidInput       = "некорректные данные заявки"
)

type Handler struct {
	service EnquiriesService
	logger  Logger
}

func NewHandler(service EnquiriesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/enquiries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEnquiryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /enquiries - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	enq, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, enquiries.ErrClientNotFound):
			h.logger.Warn("POST /enquiries - Client %d not found", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, enquiries.ErrInvalidInput):
			h.logger.Warn("POST /enquiries - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /enquiries - Failed to create enquiry: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /enquiries - Enquiry %s created", enq.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(enq))
}

package get_enquiry

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/service/enquiries"
)

const (
	msgEnquiryNotFound = "заявка не найдена"
	msgInvalidID       = "некорректный идентификатор заявки"
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

// Handle GET /api/v1/enquiries/{enquiryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	enquiryID := mux.Vars(r)["enquiryId"]

	enq, err := h.service.GetByID(r.Context(), enquiryID)
	if err != nil {
		switch {
		case errors.Is(err, enquiries.ErrEnquiryNotFound):
			h.logger.Warn("GET /enquiries/%s - Enquiry not found", enquiryID)
			handlers.RespondNotFound(w, msgEnquiryNotFound)

		case errors.Is(err, enquiries.ErrInvalidInput):
			h.logger.Warn("GET /enquiries/%s - Invalid input: %v", enquiryID, err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("GET /enquiries/%s - Failed to get enquiry: %v", enquiryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(enq))
}

package change_enquiry_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	changeStatus "github.com/m04kA/SMC-VenueService/internal/usecase/change_enquiry_status"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "недопустимый целевой статус"
	msgEnquiryNotFound    = "заявка не найдена"
)

type Handler struct {
	useCase ChangeEnquiryStatusUseCase
	logger  Logger
}

func NewHandler(useCase ChangeEnquiryStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/enquiries/{enquiryId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	enquiryID := mux.Vars(r)["enquiryId"]

	var req ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /enquiries/%s/status - Invalid request body: %v", enquiryID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(enquiryID))
	if err != nil {
		var blockedErr *changeStatus.TransitionBlockedError
		var ackErr *changeStatus.WarningsNotAcknowledgedError

		switch {
		case errors.As(err, &blockedErr):
			// Переход отклонен: площадка занята
			h.logger.Warn("PATCH /enquiries/%s/status - Transition blocked", enquiryID)
			handlers.RespondVenueConflict(w, blockedErr.Classification, "")

		case errors.As(err, &ackErr):
			// Предупреждения требуют bypass-once подтверждения
			h.logger.Info("PATCH /enquiries/%s/status - Warnings require acknowledgment", enquiryID)
			handlers.RespondVenueConflict(w, ackErr.Classification, ackErr.AckToken)

		case errors.Is(err, changeStatus.ErrEnquiryNotFound):
			h.logger.Warn("PATCH /enquiries/%s/status - Enquiry not found", enquiryID)
			handlers.RespondNotFound(w, msgEnquiryNotFound)

		case errors.Is(err, changeStatus.ErrInvalidStatus), errors.Is(err, changeStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /enquiries/%s/status - Invalid input: %v", enquiryID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /enquiries/%s/status - Failed to change status: %v", enquiryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /enquiries/%s/status - Status changed to %s", enquiryID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

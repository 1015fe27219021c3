package update_sessions

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	updateSessions "github.com/m04kA/SMC-VenueService/internal/usecase/update_sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidKind        = "недопустимый тип записи"
	msgInvalidSessions    = "некорректный набор сессий"
	msgRecordNotFound     = "запись не найдена"
)

type Handler struct {
	useCase UpdateSessionsUseCase
	logger  Logger
}

func NewHandler(useCase UpdateSessionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/records/{kind}/{recordId}/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind := vars["kind"]
	recordID := vars["recordId"]

	var req UpdateSessionsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /records/%s/%s/sessions - Invalid request body: %v", kind, recordID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(kind, recordID))
	if err != nil {
		var conflictErr *updateSessions.VenueConflictError
		var ackErr *updateSessions.WarningsNotAcknowledgedError

		switch {
		case errors.As(err, &conflictErr):
			// Изменение отклонено: площадка занята
			h.logger.Warn("PUT /records/%s/%s/sessions - Update blocked", kind, recordID)
			handlers.RespondVenueConflict(w, conflictErr.Classification, "")

		case errors.As(err, &ackErr):
			// Предупреждения требуют bypass-once подтверждения
			h.logger.Info("PUT /records/%s/%s/sessions - Warnings require acknowledgment", kind, recordID)
			handlers.RespondVenueConflict(w, ackErr.Classification, ackErr.AckToken)

		case errors.Is(err, updateSessions.ErrRecordNotFound):
			h.logger.Warn("PUT /records/%s/%s/sessions - Record not found", kind, recordID)
			handlers.RespondNotFound(w, msgRecordNotFound)

		case errors.Is(err, updateSessions.ErrInvalidKind):
			h.logger.Warn("PUT /records/%s/%s/sessions - Invalid record kind", kind, recordID)
			handlers.RespondBadRequest(w, msgInvalidKind)

		case errors.Is(err, updateSessions.ErrInvalidInput):
			h.logger.Warn("PUT /records/%s/%s/sessions - Invalid input: %v", kind, recordID, err)
			handlers.RespondBadRequest(w, msgInvalidSessions)

		default:
			h.logger.Error("PUT /records/%s/%s/sessions - Failed to update sessions: %v", kind, recordID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /records/%s/%s/sessions - Sessions updated (%d session(s))", kind, recordID, len(result.Sessions))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package update_sessions

import (
	"context"

	updateSessions "github.com/m04kA/SMC-VenueService/internal/usecase/update_sessions"
)

type UpdateSessionsUseCase interface {
	Execute(ctx context.Context, req *updateSessions.Request) (*updateSessions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

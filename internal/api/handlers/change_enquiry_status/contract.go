package change_enquiry_status

import (
	"context"

	changeStatus "github.com/m04kA/SMC-VenueService/internal/usecase/change_enquiry_status"
)

type ChangeEnquiryStatusUseCase interface {
	Execute(ctx context.Context, req *changeStatus.Request) (*changeStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

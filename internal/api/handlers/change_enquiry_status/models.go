package change_enquiry_status

import (
	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
	changeStatus "github.com/m04kA/SMC-VenueService/internal/usecase/change_enquiry_status"
)

// ChangeStatusRequest HTTP request model
type ChangeStatusRequest struct {
	Status   string  `json:"status"`
	AckToken *string `json:"ackToken,omitempty"`
}

// ChangeStatusResponse HTTP response model
type ChangeStatusResponse struct {
	EnquiryID            string                     `json:"enquiryId"`
	Status               string                     `json:"status"`
	ConflictCheckSkipped bool                       `json:"conflictCheckSkipped,omitempty"`
	Warnings             []handlers.ConflictPayload `json:"warnings,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ChangeStatusRequest) ToUseCaseRequest(enquiryID string) *changeStatus.Request {
	return &changeStatus.Request{
		EnquiryID:    enquiryID,
		TargetStatus: domain.RecordStatus(r.Status),
		AckToken:     r.AckToken,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *changeStatus.Response) *ChangeStatusResponse {
	return &ChangeStatusResponse{
		EnquiryID:            resp.EnquiryID,
		Status:               string(resp.Status),
		ConflictCheckSkipped: resp.ConflictCheckSkipped,
		Warnings:             handlers.ToConflictPayloads(resp.Warnings),
	}
}

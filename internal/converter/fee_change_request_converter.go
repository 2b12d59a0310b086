package converter

import (
	"clinic-admin-api/internal/delivery/dto"
	"clinic-admin-api/internal/domain/entity"

	"github.com/google/uuid"
)

// FeeChangeRequestToResponse converts a FeeChangeRequest entity to its DTO
func FeeChangeRequestToResponse(request *entity.FeeChangeRequest) *dto.FeeChangeRequestResponse {
	if request == nil {
		return nil
	}

	response := &dto.FeeChangeRequestResponse{
		ID:           request.ID,
		DoctorID:     request.DoctorID,
		CurrentFee:   request.CurrentFee,
		RequestedFee: request.RequestedFee,
		Reason:       request.Reason,
		Status:       string(request.Status),
		DecidedBy:    request.DecidedBy,
		DecidedAt:    request.DecidedAt,
		CreatedAt:    request.CreatedAt,
		UpdatedAt:    request.UpdatedAt,
	}

	if request.Doctor.ID != uuid.Nil {
		response.DoctorName = request.Doctor.FullName
	}

	return response
}

// FeeChangeRequestsToResponses converts a slice of FeeChangeRequest entities to DTOs
func FeeChangeRequestsToResponses(requests []entity.FeeChangeRequest) []dto.FeeChangeRequestResponse {
	responses := make([]dto.FeeChangeRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *FeeChangeRequestToResponse(&requests[i])
	}
	return responses
}

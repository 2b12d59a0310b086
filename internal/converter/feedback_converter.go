package converter

import (
	"clinic-admin-api/internal/delivery/dto"
	"clinic-admin-api/internal/domain/entity"
)

// FeedbackToResponse converts a Feedback entity to FeedbackResponse DTO
func FeedbackToResponse(feedback *entity.Feedback) *dto.FeedbackResponse {
	if feedback == nil {
		return nil
	}

	response := &dto.FeedbackResponse{
		ID:            feedback.ID,
		PatientID:     feedback.PatientID,
		AppointmentID: feedback.AppointmentID,
		Rating:        feedback.Rating,
		Message:       feedback.Message,
		Status:        string(feedback.Status),
		ReviewedBy:    feedback.ReviewedBy,
		CreatedAt:     feedback.CreatedAt,
		UpdatedAt:     feedback.UpdatedAt,
	}

	if feedback.Patient != nil {
		response.PatientName = feedback.Patient.FullName
	}

	return response
}

// FeedbackItemsToResponses converts a slice of Feedback entities to DTOs
func FeedbackItemsToResponses(items []entity.Feedback) []dto.FeedbackResponse {
	responses := make([]dto.FeedbackResponse, len(items))
	for i := range items {
		responses[i] = *FeedbackToResponse(&items[i])
	}
	return responses
}

package converter

import (
	"clinic-admin-api/internal/delivery/dto"
	"clinic-admin-api/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:              doctor.ID,
		ClinicID:        doctor.ClinicID,
		FullName:        doctor.FullName,
		Email:           doctor.Email,
		Phone:           doctor.Phone,
		Specialty:       doctor.Specialty,
		ProfessionalFee: doctor.ProfessionalFee,
		Biography:       doctor.Biography,
		AvailableFrom:   doctor.AvailableFrom,
		AvailableTo:     doctor.AvailableTo,
		Status:          string(doctor.Status),
		CreatedAt:       doctor.CreatedAt,
		UpdatedAt:       doctor.UpdatedAt,
	}

	// Include clinic name if the association was loaded
	if doctor.Clinic.ID != uuid.Nil {
		response.ClinicName = doctor.Clinic.Name
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

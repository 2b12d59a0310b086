package converter

import (
	"testing"
	"time"

	"clinic-admin-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorToResponse(t *testing.T) {
	t.Run("nil doctor", func(t *testing.T) {
		assert.Nil(t, DoctorToResponse(nil))
	})

	t.Run("without clinic loaded", func(t *testing.T) {
		doctor := &entity.Doctor{
			ID:              uuid.New(),
			ClinicID:        uuid.New(),
			FullName:        "Dr. Jane Roe",
			Email:           "jane@example.com",
			Specialty:       "Cardiology",
			ProfessionalFee: decimal.NewFromInt(200),
			Status:          entity.DoctorStatusActive,
		}

		response := DoctorToResponse(doctor)
		require.NotNil(t, response)
		assert.Equal(t, doctor.ID, response.ID)
		assert.Equal(t, "active", response.Status)
		assert.Empty(t, response.ClinicName)
	})

	t.Run("with clinic loaded", func(t *testing.T) {
		clinic := entity.Clinic{ID: uuid.New(), Name: "Main Clinic"}
		doctor := &entity.Doctor{
			ID:       uuid.New(),
			ClinicID: clinic.ID,
			Clinic:   clinic,
			FullName: "Dr. Jane Roe",
			Status:   entity.DoctorStatusSuspended,
		}

		response := DoctorToResponse(doctor)
		assert.Equal(t, "Main Clinic", response.ClinicName)
		assert.Equal(t, "suspended", response.Status)
	})
}

func TestAppointmentToResponse(t *testing.T) {
	scheduleDate := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	appointment := &entity.Appointment{
		ID:           uuid.New(),
		Code:         "APT-20260914-A1B2C3",
		PatientID:    uuid.New(),
		DoctorID:     uuid.New(),
		ScheduleDate: scheduleDate,
		StartTime:    "09:00",
		EndTime:      "09:30",
		Status:       entity.AppointmentStatusPending,
	}

	response := AppointmentToResponse(appointment)
	require.NotNil(t, response)
	assert.Equal(t, "2026-09-14", response.ScheduleDate)
	assert.Equal(t, "pending", response.Status)
	assert.Nil(t, response.Patient)
	assert.Nil(t, response.Doctor)

	appointment.Patient = entity.Patient{ID: appointment.PatientID, FullName: "John Doe"}
	appointment.Doctor = entity.Doctor{ID: appointment.DoctorID, FullName: "Dr. Jane Roe"}

	response = AppointmentToResponse(appointment)
	require.NotNil(t, response.Patient)
	assert.Equal(t, "John Doe", response.Patient.FullName)
	require.NotNil(t, response.Doctor)
	assert.Equal(t, "Dr. Jane Roe", response.Doctor.FullName)
}

func TestFeedbackToResponse(t *testing.T) {
	patientID := uuid.New()
	feedback := &entity.Feedback{
		ID:        uuid.New(),
		PatientID: &patientID,
		Rating:    5,
		Message:   "Great service",
		Status:    entity.FeedbackStatusNew,
		Patient:   &entity.Patient{ID: patientID, FullName: "John Doe"},
	}

	response := FeedbackToResponse(feedback)
	require.NotNil(t, response)
	assert.Equal(t, 5, response.Rating)
	assert.Equal(t, "new", response.Status)
	assert.Equal(t, "John Doe", response.PatientName)

	feedback.Patient = nil
	response = FeedbackToResponse(feedback)
	assert.Empty(t, response.PatientName)
}

func TestPatientsToResponses(t *testing.T) {
	patients := []entity.Patient{
		{ID: uuid.New(), FullName: "John Doe", Status: entity.PatientStatusActive},
		{ID: uuid.New(), FullName: "Mary Major", Status: entity.PatientStatusDeactivated},
	}

	responses := PatientsToResponses(patients)
	require.Len(t, responses, 2)
	assert.Equal(t, "John Doe", responses[0].FullName)
	assert.Equal(t, "deactivated", responses[1].Status)

	assert.Empty(t, PatientsToResponses(nil))
}

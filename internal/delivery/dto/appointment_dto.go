package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	ReferrerName    string    `json:"referrer_name" validate:"omitempty,max=255"`
	ReferrerContact string    `json:"referrer_contact" validate:"omitempty,max=255"`
	ScheduleDate    string    `json:"schedule_date" validate:"required,datetime=2006-01-02"`
	StartTime       string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime         string    `json:"end_time" validate:"required,datetime=15:04"`
	Reason          string    `json:"reason" validate:"omitempty"`
	Notes           string    `json:"notes" validate:"omitempty"`
}

// ListAppointmentsQuery is populated from URL query parameters, not JSON
type ListAppointmentsQuery struct {
	Status    string
	DoctorID  string
	PatientID string
	DateFrom  string
	DateTo    string
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved completed cancelled no_show"`
	Notes  string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID        `json:"id"`
	Code            string           `json:"code"`
	PatientID       uuid.UUID        `json:"patient_id"`
	DoctorID        uuid.UUID        `json:"doctor_id"`
	ClinicID        uuid.UUID        `json:"clinic_id"`
	ReferrerName    string           `json:"referrer_name,omitempty"`
	ReferrerContact string           `json:"referrer_contact,omitempty"`
	ScheduleDate    string           `json:"schedule_date"`
	StartTime       string           `json:"start_time"`
	EndTime         string           `json:"end_time"`
	Reason          string           `json:"reason,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	Status          string           `json:"status"`
	Patient         *PatientResponse `json:"patient,omitempty"`
	Doctor          *DoctorResponse  `json:"doctor,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

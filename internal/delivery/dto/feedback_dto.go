package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateFeedbackRequest struct {
	PatientID     *uuid.UUID `json:"patient_id" validate:"omitempty"`
	AppointmentID *uuid.UUID `json:"appointment_id" validate:"omitempty"`
	Rating        int        `json:"rating" validate:"required,gte=1,lte=5"`
	Message       string     `json:"message" validate:"required,min=3"`
}

// ListFeedbackQuery is populated from URL query parameters, not JSON
type ListFeedbackQuery struct {
	Status    string
	MinRating int
}

type UpdateFeedbackStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new reviewed resolved"`
}

// Response DTOs

type FeedbackResponse struct {
	ID            uuid.UUID  `json:"id"`
	PatientID     *uuid.UUID `json:"patient_id,omitempty"`
	PatientName   string     `json:"patient_name,omitempty"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	Rating        int        `json:"rating"`
	Message       string     `json:"message"`
	Status        string     `json:"status"`
	ReviewedBy    *uuid.UUID `json:"reviewed_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type FeedbackListResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
	Total    int                `json:"total"`
}

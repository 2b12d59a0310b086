package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	ClinicID        uuid.UUID       `json:"clinic_id" validate:"required"`
	FullName        string          `json:"full_name" validate:"required,min=2"`
	Email           string          `json:"email" validate:"required,email"`
	Phone           string          `json:"phone" validate:"omitempty,max=20"`
	Specialty       string          `json:"specialty" validate:"required"`
	ProfessionalFee decimal.Decimal `json:"professional_fee" validate:"required"`
	Biography       string          `json:"biography" validate:"omitempty"`
	AvailableFrom   string          `json:"available_from" validate:"omitempty,datetime=15:04"`
	AvailableTo     string          `json:"available_to" validate:"omitempty,datetime=15:04"`
}

type UpdateDoctorRequest struct {
	ClinicID        *uuid.UUID       `json:"clinic_id" validate:"omitempty"`
	FullName        string           `json:"full_name" validate:"omitempty,min=2"`
	Email           string           `json:"email" validate:"omitempty,email"`
	Phone           string           `json:"phone" validate:"omitempty,max=20"`
	Specialty       string           `json:"specialty" validate:"omitempty"`
	ProfessionalFee *decimal.Decimal `json:"professional_fee" validate:"omitempty"`
	Biography       string           `json:"biography" validate:"omitempty"`
	AvailableFrom   string           `json:"available_from" validate:"omitempty,datetime=15:04"`
	AvailableTo     string           `json:"available_to" validate:"omitempty,datetime=15:04"`
}

type UpdateDoctorStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended deactivated"`
}

// ListDoctorsQuery carries the query-string filters for the doctor list.
// Not JSON-decoded; populated by the handler from URL values.
type ListDoctorsQuery struct {
	Search    string
	Specialty string
	ClinicID  string
	Status    string
	SortBy    string
	SortDir   string
	Page      int
	Limit     int
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	ClinicID        uuid.UUID       `json:"clinic_id"`
	ClinicName      string          `json:"clinic_name,omitempty"`
	FullName        string          `json:"full_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone,omitempty"`
	Specialty       string          `json:"specialty"`
	ProfessionalFee decimal.Decimal `json:"professional_fee"`
	Biography       string          `json:"biography,omitempty"`
	AvailableFrom   string          `json:"available_from,omitempty"`
	AvailableTo     string          `json:"available_to,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int64            `json:"total"`
}

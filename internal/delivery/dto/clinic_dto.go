package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateClinicRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Address string `json:"address" validate:"omitempty"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
}

type UpdateClinicRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2"`
	Address  string `json:"address" validate:"omitempty"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Email    string `json:"email" validate:"omitempty,email"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type ClinicResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	IsActive  *bool     `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClinicListResponse struct {
	Clinics []ClinicResponse `json:"clinics"`
	Total   int              `json:"total"`
}

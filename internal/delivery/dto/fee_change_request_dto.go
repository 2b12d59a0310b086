package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateFeeChangeRequest struct {
	DoctorID     uuid.UUID       `json:"doctor_id" validate:"required"`
	RequestedFee decimal.Decimal `json:"requested_fee" validate:"required"`
	Reason       string          `json:"reason" validate:"omitempty"`
}

// Response DTOs

type FeeChangeRequestResponse struct {
	ID           uuid.UUID       `json:"id"`
	DoctorID     uuid.UUID       `json:"doctor_id"`
	DoctorName   string          `json:"doctor_name,omitempty"`
	CurrentFee   decimal.Decimal `json:"current_fee"`
	RequestedFee decimal.Decimal `json:"requested_fee"`
	Reason       string          `json:"reason,omitempty"`
	Status       string          `json:"status"`
	DecidedBy    *uuid.UUID      `json:"decided_by,omitempty"`
	DecidedAt    *time.Time      `json:"decided_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type FeeChangeRequestListResponse struct {
	Requests []FeeChangeRequestResponse `json:"requests"`
	Total    int                        `json:"total"`
}

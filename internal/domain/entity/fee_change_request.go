package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeRequestStatus represents the decision state of a fee change request
type FeeRequestStatus string

const (
	FeeRequestStatusPending  FeeRequestStatus = "pending"
	FeeRequestStatusApproved FeeRequestStatus = "approved"
	FeeRequestStatusRejected FeeRequestStatus = "rejected"
)

// FeeChangeRequest represents a request to change a doctor's professional fee.
// CurrentFee is captured at submission time so the reviewer sees what the fee
// was when the request was made, even if it changed since.
type FeeChangeRequest struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"doctor_id"`
	CurrentFee   decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"current_fee"`
	RequestedFee decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"requested_fee"`
	Reason       string           `gorm:"type:text" json:"reason,omitempty"`
	Status       FeeRequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DecidedBy    *uuid.UUID       `gorm:"type:uuid" json:"decided_by,omitempty"`
	DecidedAt    *time.Time       `json:"decided_at,omitempty"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Decider *User  `gorm:"foreignKey:DecidedBy" json:"decider,omitempty"`
}

func (FeeChangeRequest) TableName() string {
	return "fee_change_requests"
}

// IsPending checks if the request is still awaiting a decision
func (f *FeeChangeRequest) IsPending() bool {
	return f.Status == FeeRequestStatusPending
}

// Approve marks the request approved by the given user
func (f *FeeChangeRequest) Approve(decidedBy uuid.UUID, at time.Time) {
	f.Status = FeeRequestStatusApproved
	f.DecidedBy = &decidedBy
	f.DecidedAt = &at
}

// Reject marks the request rejected by the given user
func (f *FeeChangeRequest) Reject(decidedBy uuid.UUID, at time.Time) {
	f.Status = FeeRequestStatusRejected
	f.DecidedBy = &decidedBy
	f.DecidedAt = &at
}

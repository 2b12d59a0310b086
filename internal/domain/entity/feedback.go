package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackStatus represents the review state of a feedback item
type FeedbackStatus string

const (
	FeedbackStatusNew      FeedbackStatus = "new"
	FeedbackStatusReviewed FeedbackStatus = "reviewed"
	FeedbackStatusResolved FeedbackStatus = "resolved"
)

// Feedback represents a patient feedback item. PatientID and AppointmentID
// are optional so anonymous walk-in feedback can still be recorded.
type Feedback struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     *uuid.UUID     `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	AppointmentID *uuid.UUID     `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	Rating        int            `gorm:"not null" json:"rating"`
	Message       string         `gorm:"type:text;not null" json:"message"`
	Status        FeedbackStatus `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	ReviewedBy    *uuid.UUID     `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient     *Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Reviewer    *User        `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
}

func (Feedback) TableName() string {
	return "feedback"
}

// ValidFeedbackStatus reports whether s is a known feedback status
func ValidFeedbackStatus(s string) bool {
	switch FeedbackStatus(s) {
	case FeedbackStatusNew, FeedbackStatusReviewed, FeedbackStatusResolved:
		return true
	}
	return false
}

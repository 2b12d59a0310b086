package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientStatus represents the lifecycle status of a patient record
type PatientStatus string

const (
	PatientStatusActive      PatientStatus = "active"
	PatientStatusDeactivated PatientStatus = "deactivated"
)

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Patient represents a patient record managed from the dashboard
type Patient struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName    string        `gorm:"type:varchar(255);not null" json:"full_name"`
	Email       string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone       string        `gorm:"type:varchar(20);index" json:"phone,omitempty"`
	DateOfBirth time.Time     `gorm:"type:date;not null" json:"date_of_birth"`
	Gender      string        `gorm:"type:char(1);not null" json:"gender"`
	Address     string        `gorm:"type:text" json:"address,omitempty"`
	Status      PatientStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	Feedback     []Feedback    `gorm:"foreignKey:PatientID" json:"feedback,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// IsActive checks if the patient record is active
func (p *Patient) IsActive() bool {
	return p.Status == PatientStatusActive
}

// Activate flips the patient back to active
func (p *Patient) Activate() {
	p.Status = PatientStatusActive
}

// Deactivate retires the patient record
func (p *Patient) Deactivate() {
	p.Status = PatientStatusDeactivated
}

// ValidPatientStatus reports whether s is a known patient status
func ValidPatientStatus(s string) bool {
	switch PatientStatus(s) {
	case PatientStatusActive, PatientStatusDeactivated:
		return true
	}
	return false
}

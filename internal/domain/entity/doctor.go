package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorStatus represents the lifecycle status of a doctor record.
// Doctors are never hard-deleted through dashboard flows, only flipped
// between these states.
type DoctorStatus string

const (
	DoctorStatusActive      DoctorStatus = "active"
	DoctorStatusSuspended   DoctorStatus = "suspended"
	DoctorStatusDeactivated DoctorStatus = "deactivated"
)

// Doctor represents a specialist attached to a clinic
type Doctor struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"clinic_id"`
	FullName        string          `gorm:"type:varchar(255);not null" json:"full_name"`
	Email           string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone           string          `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Specialty       string          `gorm:"type:varchar(100);not null;index" json:"specialty"`
	ProfessionalFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"professional_fee"`
	Biography       string          `gorm:"type:text" json:"biography,omitempty"`
	AvailableFrom   string          `gorm:"type:time" json:"available_from,omitempty"`
	AvailableTo     string          `gorm:"type:time" json:"available_to,omitempty"`
	Status          DoctorStatus    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Clinic            Clinic             `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Appointments      []Appointment      `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
	FeeChangeRequests []FeeChangeRequest `gorm:"foreignKey:DoctorID" json:"fee_change_requests,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsActive checks if the doctor can take new appointments
func (d *Doctor) IsActive() bool {
	return d.Status == DoctorStatusActive
}

// Activate flips the doctor back to active
func (d *Doctor) Activate() {
	d.Status = DoctorStatusActive
}

// Suspend temporarily blocks the doctor from new appointments
func (d *Doctor) Suspend() {
	d.Status = DoctorStatusSuspended
}

// Deactivate retires the doctor record
func (d *Doctor) Deactivate() {
	d.Status = DoctorStatusDeactivated
}

// ValidDoctorStatus reports whether s is a known doctor status
func ValidDoctorStatus(s string) bool {
	switch DoctorStatus(s) {
	case DoctorStatusActive, DoctorStatusSuspended, DoctorStatusDeactivated:
		return true
	}
	return false
}

package entity

import "github.com/google/uuid"

// DoctorFilter is a domain-level filter for querying doctors.
// Used by the repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Search    string     // Case-insensitive substring over name, email, specialty (ILIKE)
	Specialty string     // Exact-ish specialty match (ILIKE)
	ClinicID  *uuid.UUID // Filter by clinic
	Status    string     // Filter by doctor status
	SortBy    string     // name | specialty | fee | created_at
	SortDesc  bool
	Page      int
	Limit     int
}

// AppointmentFilter is a domain-level filter for querying appointments
type AppointmentFilter struct {
	Status    string
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	DateFrom  string // Format: YYYY-MM-DD
	DateTo    string // Format: YYYY-MM-DD
}

// FeedbackFilter is a domain-level filter for querying feedback
type FeedbackFilter struct {
	Status    string
	MinRating int
}

package usecase

import (
	"regexp"
	"testing"

	"clinic-admin-api/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDoctorFilter(t *testing.T) {
	clinicID := uuid.New()

	t.Run("full query", func(t *testing.T) {
		query := &dto.ListDoctorsQuery{
			Search:    "cardio",
			Specialty: "Cardiology",
			ClinicID:  clinicID.String(),
			Status:    "active",
			SortBy:    "fee",
			SortDir:   "desc",
			Page:      2,
			Limit:     25,
		}

		filter, err := buildDoctorFilter(query)
		require.NoError(t, err)

		assert.Equal(t, "cardio", filter.Search)
		assert.Equal(t, "active", filter.Status)
		assert.Equal(t, "fee", filter.SortBy)
		assert.True(t, filter.SortDesc)
		assert.Equal(t, 2, filter.Page)
		assert.Equal(t, 25, filter.Limit)
		require.NotNil(t, filter.ClinicID)
		assert.Equal(t, clinicID, *filter.ClinicID)
	})

	t.Run("nil query", func(t *testing.T) {
		filter, err := buildDoctorFilter(nil)
		require.NoError(t, err)
		assert.Empty(t, filter.Search)
	})

	t.Run("unknown sort key falls back to name", func(t *testing.T) {
		filter, err := buildDoctorFilter(&dto.ListDoctorsQuery{SortBy: "password"})
		require.NoError(t, err)
		assert.Equal(t, "name", filter.SortBy)
	})

	t.Run("empty sort key kept for repository default", func(t *testing.T) {
		filter, err := buildDoctorFilter(&dto.ListDoctorsQuery{})
		require.NoError(t, err)
		assert.Empty(t, filter.SortBy)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := buildDoctorFilter(&dto.ListDoctorsQuery{Status: "retired"})
		assert.ErrorIs(t, err, ErrInvalidDoctorStatus)
	})

	t.Run("malformed clinic id", func(t *testing.T) {
		_, err := buildDoctorFilter(&dto.ListDoctorsQuery{ClinicID: "not-a-uuid"})
		assert.ErrorIs(t, err, ErrClinicNotFound)
	})
}

func TestBuildAppointmentFilter(t *testing.T) {
	doctorID := uuid.New()
	patientID := uuid.New()

	t.Run("full query", func(t *testing.T) {
		query := &dto.ListAppointmentsQuery{
			Status:    "approved",
			DoctorID:  doctorID.String(),
			PatientID: patientID.String(),
			DateFrom:  "2026-08-01",
			DateTo:    "2026-08-31",
		}

		filter, err := buildAppointmentFilter(query)
		require.NoError(t, err)

		assert.Equal(t, "approved", filter.Status)
		assert.Equal(t, "2026-08-01", filter.DateFrom)
		assert.Equal(t, "2026-08-31", filter.DateTo)
		require.NotNil(t, filter.DoctorID)
		assert.Equal(t, doctorID, *filter.DoctorID)
		require.NotNil(t, filter.PatientID)
		assert.Equal(t, patientID, *filter.PatientID)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := buildAppointmentFilter(&dto.ListAppointmentsQuery{Status: "done"})
		assert.ErrorIs(t, err, ErrInvalidAppointmentStatus)
	})

	t.Run("malformed doctor id", func(t *testing.T) {
		_, err := buildAppointmentFilter(&dto.ListAppointmentsQuery{DoctorID: "nope"})
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})
}

func TestGenerateAppointmentCode(t *testing.T) {
	pattern := regexp.MustCompile(`^APT-\d{8}-[0-9A-F]{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := generateAppointmentCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorStatusHelpers(t *testing.T) {
	d := &Doctor{Status: DoctorStatusActive}
	assert.True(t, d.IsActive())

	d.Suspend()
	assert.Equal(t, DoctorStatusSuspended, d.Status)
	assert.False(t, d.IsActive())

	d.Deactivate()
	assert.Equal(t, DoctorStatusDeactivated, d.Status)

	d.Activate()
	assert.True(t, d.IsActive())
}

func TestValidDoctorStatus(t *testing.T) {
	for _, valid := range []string{"active", "suspended", "deactivated"} {
		assert.True(t, ValidDoctorStatus(valid), valid)
	}
	for _, invalid := range []string{"", "Active", "retired", "disabled"} {
		assert.False(t, ValidDoctorStatus(invalid), invalid)
	}
}

func TestValidPatientStatus(t *testing.T) {
	assert.True(t, ValidPatientStatus("active"))
	assert.True(t, ValidPatientStatus("deactivated"))
	assert.False(t, ValidPatientStatus("suspended"))
	assert.False(t, ValidPatientStatus(""))
}

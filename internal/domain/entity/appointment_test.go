package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to approved", AppointmentStatusPending, AppointmentStatusApproved, true},
		{"pending to cancelled", AppointmentStatusPending, AppointmentStatusCancelled, true},
		{"pending to completed", AppointmentStatusPending, AppointmentStatusCompleted, false},
		{"pending to no_show", AppointmentStatusPending, AppointmentStatusNoShow, false},
		{"approved to completed", AppointmentStatusApproved, AppointmentStatusCompleted, true},
		{"approved to cancelled", AppointmentStatusApproved, AppointmentStatusCancelled, true},
		{"approved to no_show", AppointmentStatusApproved, AppointmentStatusNoShow, true},
		{"approved back to pending", AppointmentStatusApproved, AppointmentStatusPending, false},
		{"completed is terminal", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"cancelled is terminal", AppointmentStatusCancelled, AppointmentStatusApproved, false},
		{"no_show is terminal", AppointmentStatusNoShow, AppointmentStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.allowed, a.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentIsTerminal(t *testing.T) {
	terminal := []AppointmentStatus{AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow}
	for _, status := range terminal {
		a := &Appointment{Status: status}
		assert.True(t, a.IsTerminal(), "expected %s to be terminal", status)
	}

	for _, status := range []AppointmentStatus{AppointmentStatusPending, AppointmentStatusApproved} {
		a := &Appointment{Status: status}
		assert.False(t, a.IsTerminal(), "expected %s to not be terminal", status)
	}
}

func TestValidAppointmentStatus(t *testing.T) {
	assert.True(t, ValidAppointmentStatus("pending"))
	assert.True(t, ValidAppointmentStatus("no_show"))
	assert.False(t, ValidAppointmentStatus("noshow"))
	assert.False(t, ValidAppointmentStatus(""))
	assert.False(t, ValidAppointmentStatus("PENDING"))
}

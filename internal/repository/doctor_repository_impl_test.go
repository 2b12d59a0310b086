package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorSortColumn(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{"name", "full_name"},
		{"specialty", "specialty"},
		{"fee", "professional_fee"},
		{"created_at", "created_at"},
		{"", "full_name"},
		{"password; DROP TABLE doctors", "full_name"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, doctorSortColumn(tt.sortBy), tt.sortBy)
	}
}

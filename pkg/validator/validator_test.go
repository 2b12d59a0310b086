package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Name   string `validate:"required,min=2"`
	Status string `validate:"omitempty,oneof=active deactivated"`
	Rating int    `validate:"omitempty,gte=1,lte=5"`
	DOB    string `validate:"omitempty,datetime=2006-01-02"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Email:  "jane@example.com",
		Name:   "Jane",
		Status: "active",
		Rating: 4,
		DOB:    "1990-04-01",
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Email:  "not-an-email",
		Name:   "J",
		Status: "retired",
		Rating: 9,
		DOB:    "01/04/1990",
	})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)

	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
	assert.Equal(t, "Name must be at least 2 characters", formatted["Name"])
	assert.Equal(t, "Status must be one of: active deactivated", formatted["Status"])
	assert.Equal(t, "Rating must be less than or equal to 5", formatted["Rating"])
	assert.Equal(t, "DOB must match format 2006-01-02", formatted["DOB"])
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email is required", formatted["Email"])
	assert.Equal(t, "Name is required", formatted["Name"])
}

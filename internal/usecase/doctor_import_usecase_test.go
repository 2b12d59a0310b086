package usecase

import (
	"bytes"
	"context"
	"testing"

	"clinic-admin-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCoerceTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty stays empty", "", "", false},
		{"24-hour", "15:04", "15:04", false},
		{"24-hour morning", "09:30", "09:30", false},
		{"24-hour with seconds", "09:30:00", "09:30", false},
		{"12-hour with minutes", "3:04 PM", "15:04", false},
		{"12-hour lowercase", "3:04 pm", "15:04", false},
		{"12-hour without minutes", "3 PM", "15:00", false},
		{"midnight 12-hour", "12:00 AM", "00:00", false},
		{"excel noon fraction", "0.5", "12:00", false},
		{"excel morning fraction", "0.395833", "09:30", false},
		{"fraction just under midnight clamps", "0.9999", "23:59", false},
		{"fraction out of range", "1.5", "", true},
		{"negative fraction", "-0.25", "", true},
		{"garbage", "soon", "", true},
		{"out of range hour", "25:00", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeClinicName(t *testing.T) {
	assert.Equal(t, "main clinic", normalizeClinicName("Main Clinic"))
	assert.Equal(t, "main clinic", normalizeClinicName("  main   CLINIC  "))
	assert.Equal(t, "main clinic", normalizeClinicName("Main\tClinic"))
	assert.Equal(t, "", normalizeClinicName("   "))
}

func TestParseDoctorRow(t *testing.T) {
	clinicID := uuid.New()
	clinicIndex := map[string]uuid.UUID{"main clinic": clinicID}

	t.Run("valid row", func(t *testing.T) {
		row := []string{"Dr. Jane Roe", "Jane.Roe@example.com", "08123456", "Cardiology", " Main  Clinic ", "150.50", "09:00", "5 PM"}

		doctor, rowErrors := parseDoctorRow(2, row, clinicIndex)
		require.Empty(t, rowErrors)
		require.NotNil(t, doctor)

		assert.Equal(t, "Dr. Jane Roe", doctor.FullName)
		assert.Equal(t, "jane.roe@example.com", doctor.Email)
		assert.Equal(t, "Cardiology", doctor.Specialty)
		assert.Equal(t, clinicID, doctor.ClinicID)
		assert.True(t, decimal.NewFromFloat(150.50).Equal(doctor.ProfessionalFee))
		assert.Equal(t, "09:00", doctor.AvailableFrom)
		assert.Equal(t, "17:00", doctor.AvailableTo)
		assert.Equal(t, entity.DoctorStatusActive, doctor.Status)
	})

	t.Run("short row is padded with empty cells", func(t *testing.T) {
		row := []string{"Dr. Jane Roe", "jane@example.com", "", "Cardiology", "Main Clinic", "100"}

		doctor, rowErrors := parseDoctorRow(3, row, clinicIndex)
		require.Empty(t, rowErrors)
		assert.Equal(t, "", doctor.AvailableFrom)
		assert.Equal(t, "", doctor.AvailableTo)
	})

	t.Run("collects every field error", func(t *testing.T) {
		row := []string{"", "not-an-email", "", "", "Unknown Clinic", "-5", "whenever", "08:00"}

		doctor, rowErrors := parseDoctorRow(4, row, clinicIndex)
		assert.Nil(t, doctor)

		fields := make(map[string]bool)
		for _, rowErr := range rowErrors {
			assert.Equal(t, 4, rowErr.Row)
			fields[rowErr.Field] = true
		}
		assert.True(t, fields["full_name"])
		assert.True(t, fields["email"])
		assert.True(t, fields["specialty"])
		assert.True(t, fields["clinic"])
		assert.True(t, fields["professional_fee"])
		assert.True(t, fields["available_from"])
	})

	t.Run("availability window must be ordered", func(t *testing.T) {
		row := []string{"Dr. Jane Roe", "jane@example.com", "", "Cardiology", "Main Clinic", "100", "17:00", "09:00"}

		doctor, rowErrors := parseDoctorRow(5, row, clinicIndex)
		assert.Nil(t, doctor)
		require.Len(t, rowErrors, 1)
		assert.Equal(t, "available_to", rowErrors[0].Field)
	})

	t.Run("non-numeric fee", func(t *testing.T) {
		row := []string{"Dr. Jane Roe", "jane@example.com", "", "Cardiology", "Main Clinic", "a lot"}

		doctor, rowErrors := parseDoctorRow(6, row, clinicIndex)
		assert.Nil(t, doctor)
		require.Len(t, rowErrors, 1)
		assert.Equal(t, "professional_fee", rowErrors[0].Field)
	})
}

func TestGenerateTemplate(t *testing.T) {
	u := NewDoctorImportUsecase(nil, logrus.New(), nil, nil, nil, nil)

	data, err := u.GenerateTemplate(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), importSheetName)
	assert.Contains(t, f.GetSheetList(), "Instructions")

	rows, err := f.GetRows(importSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, importHeaders, rows[0])
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"clinic-admin-api/internal/delivery/dto"
	"clinic-admin-api/internal/delivery/http/middleware"
	"clinic-admin-api/internal/domain/entity"
	"clinic-admin-api/internal/domain/repository"
	"clinic-admin-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var (
	ErrInvalidWorkbook = errors.New("file is not a valid xlsx workbook")
	ErrMissingSheet    = errors.New("workbook does not contain a Doctors sheet")
	ErrEmptySheet      = errors.New("Doctors sheet has no data rows")
)

const importSheetName = "Doctors"

var importHeaders = []string{
	"Full Name", "Email", "Phone", "Specialty", "Clinic",
	"Professional Fee", "Available From", "Available To",
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type DoctorImportUsecase interface {
	GenerateTemplate(ctx context.Context) ([]byte, error)
	ImportDoctors(ctx context.Context, file io.Reader) (*dto.ImportResultResponse, error)
}

type doctorImportUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	clinicRepo   repository.ClinicRepository
	auditService service.AuditService
	eventService *service.EventService
}

func NewDoctorImportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	clinicRepo repository.ClinicRepository,
	auditService service.AuditService,
	eventService *service.EventService,
) DoctorImportUsecase {
	return &doctorImportUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		clinicRepo:   clinicRepo,
		auditService: auditService,
		eventService: eventService,
	}
}

// GenerateTemplate builds an empty import workbook with the expected
// column layout and a short instructions sheet.
func (u *doctorImportUsecase) GenerateTemplate(ctx context.Context) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", importSheetName); err != nil {
		return nil, err
	}

	headerRow := make([]interface{}, len(importHeaders))
	for i, h := range importHeaders {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(importSheetName, "A1", &headerRow); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Instructions"); err != nil {
		return nil, err
	}
	instructions := [][]interface{}{
		{"Doctor import instructions"},
		{"Full Name, Email, Specialty, Clinic and Professional Fee are required."},
		{"Clinic must match an existing clinic name (case does not matter)."},
		{"Professional Fee is a number with up to two decimal places."},
		{"Available From / Available To accept 24-hour (09:30) or 12-hour (9:30 AM) times."},
	}
	for i, row := range instructions {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow("Instructions", cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ImportDoctors parses an uploaded workbook and creates one doctor per valid
// row. Invalid rows are reported individually and never abort the file.
func (u *doctorImportUsecase) ImportDoctors(ctx context.Context, file io.Reader) (*dto.ImportResultResponse, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, ErrInvalidWorkbook
	}
	defer f.Close()

	rows, err := f.GetRows(importSheetName)
	if err != nil {
		return nil, ErrMissingSheet
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	clinics, err := u.clinicRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find clinics: %+v", err)
		return nil, err
	}
	clinicIndex := buildClinicIndex(clinics)

	result := &dto.ImportResultResponse{
		TotalRows: len(rows) - 1,
	}

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header row

		doctor, rowErrors := parseDoctorRow(rowNum, row, clinicIndex)
		if len(rowErrors) > 0 {
			result.Failed++
			result.Errors = append(result.Errors, rowErrors...)
			continue
		}

		if err := u.createImportedDoctor(ctx, doctor); err != nil {
			result.Failed++
			message := "failed to save doctor"
			if errors.Is(err, ErrDoctorEmailExists) {
				message = "email already exists"
			}
			result.Errors = append(result.Errors, dto.ImportRowError{
				Row:     rowNum,
				Field:   "email",
				Message: message,
			})
			continue
		}

		result.Imported++
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionDoctorImport, "doctor", "", result); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
	}

	if result.Imported > 0 {
		u.eventService.Publish(ctx, "doctor", service.EventActionCreated, "bulk")
	}

	return result, nil
}

func (u *doctorImportUsecase) createImportedDoctor(ctx context.Context, doctor *entity.Doctor) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to create imported doctor: %+v", err)
		return err
	}

	return tx.Commit().Error
}

// parseDoctorRow validates a single spreadsheet row and builds a doctor from
// it. All field problems in the row are reported, not just the first one.
func parseDoctorRow(rowNum int, row []string, clinicIndex map[string]uuid.UUID) (*entity.Doctor, []dto.ImportRowError) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var rowErrors []dto.ImportRowError
	fail := func(field, message string) {
		rowErrors = append(rowErrors, dto.ImportRowError{Row: rowNum, Field: field, Message: message})
	}

	fullName := cell(0)
	if fullName == "" {
		fail("full_name", "full name is required")
	}

	email := cell(1)
	if email == "" {
		fail("email", "email is required")
	} else if !emailPattern.MatchString(email) {
		fail("email", "invalid email address")
	}

	specialty := cell(3)
	if specialty == "" {
		fail("specialty", "specialty is required")
	}

	var clinicID uuid.UUID
	clinicName := cell(4)
	if clinicName == "" {
		fail("clinic", "clinic is required")
	} else {
		id, ok := clinicIndex[normalizeClinicName(clinicName)]
		if !ok {
			fail("clinic", fmt.Sprintf("unknown clinic %q", clinicName))
		}
		clinicID = id
	}

	var fee decimal.Decimal
	feeText := cell(5)
	if feeText == "" {
		fail("professional_fee", "professional fee is required")
	} else {
		parsed, err := decimal.NewFromString(feeText)
		switch {
		case err != nil:
			fail("professional_fee", "professional fee must be a number")
		case parsed.IsNegative():
			fail("professional_fee", "professional fee cannot be negative")
		default:
			fee = parsed
		}
	}

	availableFrom, err := coerceTimeOfDay(cell(6))
	if err != nil {
		fail("available_from", err.Error())
	}
	availableTo, err := coerceTimeOfDay(cell(7))
	if err != nil {
		fail("available_to", err.Error())
	}
	if availableFrom != "" && availableTo != "" && availableTo <= availableFrom {
		fail("available_to", "available to must be after available from")
	}

	if len(rowErrors) > 0 {
		return nil, rowErrors
	}

	return &entity.Doctor{
		ClinicID:        clinicID,
		FullName:        fullName,
		Email:           strings.ToLower(email),
		Phone:           cell(2),
		Specialty:       specialty,
		ProfessionalFee: fee,
		AvailableFrom:   availableFrom,
		AvailableTo:     availableTo,
		Status:          entity.DoctorStatusActive,
	}, nil
}

// coerceTimeOfDay normalizes the time formats spreadsheets produce into
// HH:MM. Empty input is allowed and stays empty. Accepted inputs: 24-hour
// ("15:04"), 12-hour with or without minutes ("3:04 PM", "3 PM"), and the
// raw day-fraction floats Excel stores time cells as (0.5 is noon).
func coerceTimeOfDay(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	layouts := []string{"15:04", "3:04 PM", "3 PM", "15:04:05"}
	for _, layout := range layouts {
		if t, err := timeParse(layout, strings.ToUpper(value)); err == nil {
			return t, nil
		}
	}

	if fraction, err := strconv.ParseFloat(value, 64); err == nil {
		if fraction < 0 || fraction >= 1 {
			return "", errors.New("time fraction out of range")
		}
		totalMinutes := int(math.Round(fraction * 24 * 60))
		// Fractions just under 1 round to a full day; clamp to 23:59 so the
		// result stays a valid time of day.
		if totalMinutes >= 24*60 {
			totalMinutes = 24*60 - 1
		}
		return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60), nil
	}

	return "", fmt.Errorf("unrecognized time %q", value)
}

func timeParse(layout, value string) (string, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return "", err
	}
	return t.Format("15:04"), nil
}

func buildClinicIndex(clinics []entity.Clinic) map[string]uuid.UUID {
	index := make(map[string]uuid.UUID, len(clinics))
	for _, clinic := range clinics {
		index[normalizeClinicName(clinic.Name)] = clinic.ID
	}
	return index
}

// normalizeClinicName lowercases and collapses inner whitespace so that
// " Main   Clinic " matches "main clinic".
func normalizeClinicName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"clinic-admin-api/internal/converter"
	"clinic-admin-api/internal/delivery/dto"
	"clinic-admin-api/internal/delivery/http/middleware"
	"clinic-admin-api/internal/domain/entity"
	"clinic-admin-api/internal/domain/repository"
	"clinic-admin-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrPatientNotActive         = errors.New("patient is not active")
	ErrDoctorNotActive          = errors.New("doctor is not active")
	ErrInvalidTimeRange         = errors.New("end time must be after start time")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
	eventService    *service.EventService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	eventService *service.EventService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
		eventService:    eventService,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if req.EndTime <= req.StartTime {
		return nil, ErrInvalidTimeRange
	}

	scheduleDate, err := time.Parse("2006-01-02", req.ScheduleDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if !patient.IsActive() {
		return nil, ErrPatientNotActive
	}

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.IsActive() {
		return nil, ErrDoctorNotActive
	}

	code, err := generateAppointmentCode()
	if err != nil {
		u.log.Warnf("Failed to generate appointment code: %+v", err)
		return nil, err
	}

	appointment := &entity.Appointment{
		Code:            code,
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		ClinicID:        doctor.ClinicID,
		ReferrerName:    req.ReferrerName,
		ReferrerContact: req.ReferrerContact,
		ScheduleDate:    scheduleDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Reason:          req.Reason,
		Notes:           req.Notes,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Publish(ctx, "appointment", service.EventActionCreated, appointment.ID.String())

	appointment.Patient = *patient
	appointment.Doctor = *doctor

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error) {
	filter, err := buildAppointmentFilter(query)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindFiltered(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	if !entity.ValidAppointmentStatus(req.Status) {
		return nil, ErrInvalidAppointmentStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	target := entity.AppointmentStatus(req.Status)
	if !appointment.CanTransitionTo(target) {
		return nil, ErrInvalidStatusTransition
	}

	oldStatus := appointment.Status
	appointment.Status = target
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentStatus, "appointment", appointmentID.String(), string(oldStatus), req.Status); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Publish(ctx, "appointment", service.EventActionStatusChanged, appointmentID.String())

	return converter.AppointmentToResponse(appointment), nil
}

// generateAppointmentCode creates a unique referral code: APT-YYYYMMDD-XXXXXX
func generateAppointmentCode() (string, error) {
	randomBytes := make([]byte, 3)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}

	return fmt.Sprintf("APT-%s-%06X", time.Now().Format("20060102"), randomBytes), nil
}

func buildAppointmentFilter(query *dto.ListAppointmentsQuery) (*entity.AppointmentFilter, error) {
	filter := &entity.AppointmentFilter{
		DateFrom: query.DateFrom,
		DateTo:   query.DateTo,
	}

	if query.Status != "" {
		if !entity.ValidAppointmentStatus(query.Status) {
			return nil, ErrInvalidAppointmentStatus
		}
		filter.Status = query.Status
	}

	if query.DoctorID != "" {
		doctorID, err := uuid.Parse(query.DoctorID)
		if err != nil {
			return nil, ErrDoctorNotFound
		}
		filter.DoctorID = &doctorID
	}

	if query.PatientID != "" {
		patientID, err := uuid.Parse(query.PatientID)
		if err != nil {
			return nil, ErrPatientNotFound
		}
		filter.PatientID = &patientID
	}

	return filter, nil
}

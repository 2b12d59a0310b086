package usecase

import (
	"context"
	"errors"

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
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorEmailExists   = errors.New("doctor email already exists")
	ErrInvalidDoctorStatus = errors.New("invalid doctor status")
	ErrNegativeFee         = errors.New("professional fee must not be negative")
)

// Whitelisted sort keys for the doctor list
var doctorSortKeys = map[string]bool{
	"":           true,
	"name":       true,
	"specialty":  true,
	"fee":        true,
	"created_at": true,
}

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context, query *dto.ListDoctorsQuery) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateDoctorStatus(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorStatusRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	clinicRepo   repository.ClinicRepository
	auditService service.AuditService
	eventService *service.EventService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	clinicRepo repository.ClinicRepository,
	auditService service.AuditService,
	eventService *service.EventService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		clinicRepo:   clinicRepo,
		auditService: auditService,
		eventService: eventService,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.ProfessionalFee.IsNegative() {
		return nil, ErrNegativeFee
	}

	clinic, err := u.clinicRepo.FindByID(tx, req.ClinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	doctor := &entity.Doctor{
		ClinicID:        req.ClinicID,
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Specialty:       req.Specialty,
		ProfessionalFee: req.ProfessionalFee,
		Biography:       req.Biography,
		AvailableFrom:   req.AvailableFrom,
		AvailableTo:     req.AvailableTo,
		Status:          entity.DoctorStatusActive,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		if isForeignKeyError(err, "clinic") {
			return nil, ErrClinicNotFound
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}
	doctor.Clinic = *clinic

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Publish(ctx, "doctor", service.EventActionCreated, doctor.ID.String())

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, query *dto.ListDoctorsQuery) (*dto.DoctorListResponse, error) {
	filter, err := buildDoctorFilter(query)
	if err != nil {
		return nil, err
	}

	doctors, total, err := u.doctorRepo.FindFiltered(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   total,
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := converter.DoctorToResponse(doctor)

	if req.ClinicID != nil {
		clinic, err := u.clinicRepo.FindByID(tx, *req.ClinicID)
		if err != nil {
			u.log.Warnf("Failed to find clinic: %+v", err)
			return nil, err
		}
		if clinic == nil {
			return nil, ErrClinicNotFound
		}
		doctor.ClinicID = *req.ClinicID
		doctor.Clinic = *clinic
	}
	if req.FullName != "" {
		doctor.FullName = req.FullName
	}
	if req.Email != "" {
		doctor.Email = req.Email
	}
	if req.Phone != "" {
		doctor.Phone = req.Phone
	}
	if req.Specialty != "" {
		doctor.Specialty = req.Specialty
	}
	if req.ProfessionalFee != nil {
		if req.ProfessionalFee.IsNegative() {
			return nil, ErrNegativeFee
		}
		doctor.ProfessionalFee = *req.ProfessionalFee
	}
	if req.Biography != "" {
		doctor.Biography = req.Biography
	}
	if req.AvailableFrom != "" {
		doctor.AvailableFrom = req.AvailableFrom
	}
	if req.AvailableTo != "" {
		doctor.AvailableTo = req.AvailableTo
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	newValue := converter.DoctorToResponse(doctor)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionDoctorUpdate, "doctor", doctorID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Publish(ctx, "doctor", service.EventActionUpdated, doctorID.String())

	return newValue, nil
}

func (u *doctorUsecase) UpdateDoctorStatus(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorStatusRequest) (*dto.DoctorResponse, error) {
	if !entity.ValidDoctorStatus(req.Status) {
		return nil, ErrInvalidDoctorStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	oldStatus := doctor.Status
	doctor.Status = entity.DoctorStatus(req.Status)

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor status: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionDoctorStatus, "doctor", doctorID.String(), string(oldStatus), req.Status); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Publish(ctx, "doctor", service.EventActionStatusChanged, doctorID.String())

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}
	oldValue := converter.DoctorToResponse(doctor)

	affectedRows, err := u.doctorRepo.Delete(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionDoctorDelete, "doctor", doctorID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.eventService.Publish(ctx, "doctor", service.EventActionDeleted, doctorID.String())

	return nil
}

// buildDoctorFilter translates the query DTO into a domain filter.
// Unknown sort keys fall back to name; unknown statuses are rejected.
func buildDoctorFilter(query *dto.ListDoctorsQuery) (*entity.DoctorFilter, error) {
	filter := &entity.DoctorFilter{}
	if query == nil {
		return filter, nil
	}

	sortBy := query.SortBy
	if !doctorSortKeys[sortBy] {
		sortBy = "name"
	}
	if query.Status != "" && !entity.ValidDoctorStatus(query.Status) {
		return nil, ErrInvalidDoctorStatus
	}

	filter.Search = query.Search
	filter.Specialty = query.Specialty
	filter.Status = query.Status
	filter.SortBy = sortBy
	filter.SortDesc = query.SortDir == "desc"
	filter.Page = query.Page
	filter.Limit = query.Limit

	if query.ClinicID != "" {
		clinicID, err := uuid.Parse(query.ClinicID)
		if err != nil {
			return nil, ErrClinicNotFound
		}
		filter.ClinicID = &clinicID
	}

	return filter, nil
}

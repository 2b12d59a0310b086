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
	ErrClinicNotFound   = errors.New("clinic not found")
	ErrClinicNameExists = errors.New("clinic name already exists")
	ErrClinicHasDoctors = errors.New("clinic still has doctors attached")
)

type ClinicUsecase interface {
	CreateClinic(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error)
	GetClinic(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error)
	GetAllClinics(ctx context.Context) (*dto.ClinicListResponse, error)
	UpdateClinic(ctx context.Context, clinicID uuid.UUID, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error)
	DeleteClinic(ctx context.Context, clinicID uuid.UUID) error
}

type clinicUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clinicRepo   repository.ClinicRepository
	auditService service.AuditService
	eventService *service.EventService
}

func NewClinicUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	auditService service.AuditService,
	eventService *service.EventService,
) ClinicUsecase {
	return &clinicUsecase{
		db:           db,
		log:          log,
		clinicRepo:   clinicRepo,
		auditService: auditService,
		eventService: eventService,
	}
}

func (u *clinicUsecase) CreateClinic(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinic := &entity.Clinic{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}

	if err := u.clinicRepo.Create(tx, clinic); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrClinicNameExists
		}
		u.log.Warnf("Failed to create clinic: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionClinicCreate, "clinic", clinic.ID.String(), converter.ClinicToResponse(clinic)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Publish(ctx, "clinic", service.EventActionCreated, clinic.ID.String())

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) GetClinic(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) GetAllClinics(ctx context.Context) (*dto.ClinicListResponse, error) {
	clinics, err := u.clinicRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all clinics: %+v", err)
		return nil, err
	}

	responses := converter.ClinicsToResponses(clinics)

	return &dto.ClinicListResponse{
		Clinics: responses,
		Total:   len(responses),
	}, nil
}

func (u *clinicUsecase) UpdateClinic(ctx context.Context, clinicID uuid.UUID, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinic, err := u.clinicRepo.FindByID(tx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	oldValue := converter.ClinicToResponse(clinic)

	if req.Name != "" {
		clinic.Name = req.Name
	}
	if req.Address != "" {
		clinic.Address = req.Address
	}
	if req.Phone != "" {
		clinic.Phone = req.Phone
	}
	if req.Email != "" {
		clinic.Email = req.Email
	}
	if req.IsActive != nil {
		clinic.IsActive = req.IsActive
	}

	if err := u.clinicRepo.Update(tx, clinic); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrClinicNameExists
		}
		u.log.Warnf("Failed to update clinic: %+v", err)
		return nil, err
	}

	newValue := converter.ClinicToResponse(clinic)
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionClinicUpdate, "clinic", clinicID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Publish(ctx, "clinic", service.EventActionUpdated, clinicID.String())

	return newValue, nil
}

func (u *clinicUsecase) DeleteClinic(ctx context.Context, clinicID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinic, err := u.clinicRepo.FindByID(tx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return err
	}
	if clinic == nil {
		return ErrClinicNotFound
	}
	oldValue := converter.ClinicToResponse(clinic)

	affectedRows, err := u.clinicRepo.Delete(tx, clinicID)
	if err != nil {
		if isForeignKeyError(err, "clinic") {
			return ErrClinicHasDoctors
		}
		u.log.Warnf("Failed to delete clinic: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrClinicNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionClinicDelete, "clinic", clinicID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.eventService.Publish(ctx, "clinic", service.EventActionDeleted, clinicID.String())

	return nil
}

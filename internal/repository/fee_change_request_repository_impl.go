package repository

import (
	"errors"

	"clinic-admin-api/internal/domain/entity"
	domainRepo "clinic-admin-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type feeChangeRequestRepository struct{}

func NewFeeChangeRequestRepository() domainRepo.FeeChangeRequestRepository {
	return &feeChangeRequestRepository{}
}

func (r *feeChangeRequestRepository) Create(db *gorm.DB, request *entity.FeeChangeRequest) error {
	return db.Create(request).Error
}

func (r *feeChangeRequestRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.FeeChangeRequest, error) {
	var request entity.FeeChangeRequest
	err := db.Preload("Doctor").Preload("Decider").Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *feeChangeRequestRepository) FindAll(db *gorm.DB, status string) ([]entity.FeeChangeRequest, error) {
	var requests []entity.FeeChangeRequest
	query := db.Preload("Doctor").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *feeChangeRequestRepository) FindPendingByDoctorID(db *gorm.DB, doctorID uuid.UUID) (*entity.FeeChangeRequest, error) {
	var request entity.FeeChangeRequest
	err := db.Where("doctor_id = ? AND status = ?", doctorID, entity.FeeRequestStatusPending).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *feeChangeRequestRepository) Update(db *gorm.DB, request *entity.FeeChangeRequest) error {
	return db.Omit("Doctor", "Decider").Save(request).Error
}

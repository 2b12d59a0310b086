package repository

import (
	"clinic-admin-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeeChangeRequestRepository interface {
	Create(db *gorm.DB, request *entity.FeeChangeRequest) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.FeeChangeRequest, error)
	FindAll(db *gorm.DB, status string) ([]entity.FeeChangeRequest, error)
	FindPendingByDoctorID(db *gorm.DB, doctorID uuid.UUID) (*entity.FeeChangeRequest, error)
	Update(db *gorm.DB, request *entity.FeeChangeRequest) error
}

package repository

import (
	"clinic-admin-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	// FindFiltered returns the newest entries first. action matches as a
	// prefix so "doctor" covers doctor.create, doctor.import and so on.
	FindFiltered(db *gorm.DB, action string, userID *uuid.UUID, limit int) ([]entity.AuditLog, error)
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
}

package repository

import (
	"clinic-admin-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindFiltered(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	// ExpireBefore flips pending and approved appointments scheduled before
	// the given date (YYYY-MM-DD) to no_show. Returns the number of rows updated.
	ExpireBefore(db *gorm.DB, date string) (int64, error)
}

package repository

import (
	"clinic-admin-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(db *gorm.DB, feedback *entity.Feedback) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Feedback, error)
	FindFiltered(db *gorm.DB, filter *entity.FeedbackFilter) ([]entity.Feedback, error)
	Update(db *gorm.DB, feedback *entity.Feedback) error
}

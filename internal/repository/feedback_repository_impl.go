package repository

import (
	"errors"

	"clinic-admin-api/internal/domain/entity"
	domainRepo "clinic-admin-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type feedbackRepository struct{}

func NewFeedbackRepository() domainRepo.FeedbackRepository {
	return &feedbackRepository{}
}

func (r *feedbackRepository) Create(db *gorm.DB, feedback *entity.Feedback) error {
	return db.Create(feedback).Error
}

func (r *feedbackRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := db.Preload("Patient").Preload("Reviewer").Where("id = ?", id).First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindFiltered(db *gorm.DB, filter *entity.FeedbackFilter) ([]entity.Feedback, error) {
	var items []entity.Feedback

	query := db.Model(&entity.Feedback{})
	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.MinRating > 0 {
			query = query.Where("rating >= ?", filter.MinRating)
		}
	}

	err := query.
		Preload("Patient").Preload("Reviewer").
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *feedbackRepository) Update(db *gorm.DB, feedback *entity.Feedback) error {
	return db.Omit("Patient", "Appointment", "Reviewer").Save(feedback).Error
}

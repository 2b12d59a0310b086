package repository

import (
	"errors"

	"clinic-admin-api/internal/domain/entity"
	domainRepo "clinic-admin-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Clinic").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByEmail(db *gorm.DB, email string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("LOWER(email) = LOWER(?)", email).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// doctorSortColumn maps an API sort key to a whitelisted column expression.
// Unknown keys fall back to the doctor name so user input never reaches
// the ORDER BY clause verbatim.
func doctorSortColumn(sortBy string) string {
	switch sortBy {
	case "name":
		return "full_name"
	case "specialty":
		return "specialty"
	case "fee":
		return "professional_fee"
	case "created_at":
		return "created_at"
	}
	return "full_name"
}

// FindFiltered returns a page of doctors matching the filter plus the
// unpaged total count. Search is a case-insensitive substring match over
// name, email and specialty.
func (r *doctorRepository) FindFiltered(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, int64, error) {
	var doctors []entity.Doctor

	query := db.Model(&entity.Doctor{})

	if filter != nil {
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.Where(
				"full_name ILIKE ? OR email ILIKE ? OR specialty ILIKE ?",
				pattern, pattern, pattern,
			)
		}
		if filter.Specialty != "" {
			query = query.Where("specialty ILIKE ?", "%"+filter.Specialty+"%")
		}
		if filter.ClinicID != nil {
			query = query.Where("clinic_id = ?", *filter.ClinicID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := doctorSortColumn("")
	if filter != nil {
		order = doctorSortColumn(filter.SortBy)
		if filter.SortDesc {
			order += " DESC"
		} else {
			order += " ASC"
		}
		if filter.Limit > 0 {
			offset := 0
			if filter.Page > 1 {
				offset = (filter.Page - 1) * filter.Limit
			}
			query = query.Limit(filter.Limit).Offset(offset)
		}
	}

	err := query.Preload("Clinic").Order(order).Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Clinic").Save(doctor).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Doctor{})
	return affected.RowsAffected, affected.Error
}

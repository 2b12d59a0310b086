package repository

import (
	"errors"

	"clinic-admin-api/internal/domain/entity"
	domainRepo "clinic-admin-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Doctor").Preload("Clinic").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindFiltered(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment

	query := db.Model(&entity.Appointment{})
	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.DoctorID != nil {
			query = query.Where("doctor_id = ?", *filter.DoctorID)
		}
		if filter.PatientID != nil {
			query = query.Where("patient_id = ?", *filter.PatientID)
		}
		if filter.DateFrom != "" {
			query = query.Where("schedule_date >= ?", filter.DateFrom)
		}
		if filter.DateTo != "" {
			query = query.Where("schedule_date <= ?", filter.DateTo)
		}
	}

	err := query.
		Preload("Patient").Preload("Doctor").Preload("Clinic").
		Order("schedule_date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Doctor", "Clinic").Save(appointment).Error
}

func (r *appointmentRepository) ExpireBefore(db *gorm.DB, date string) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("schedule_date < ? AND status IN ?", date,
			[]string{string(entity.AppointmentStatusPending), string(entity.AppointmentStatusApproved)}).
		Update("status", entity.AppointmentStatusNoShow)
	return result.RowsAffected, result.Error
}

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
	ErrFeedbackNotFound      = errors.New("feedback not found")
	ErrInvalidFeedbackStatus = errors.New("invalid feedback status")
)

type FeedbackUsecase interface {
	CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	GetFeedback(ctx context.Context, feedbackID uuid.UUID) (*dto.FeedbackResponse, error)
	GetAllFeedback(ctx context.Context, query *dto.ListFeedbackQuery) (*dto.FeedbackListResponse, error)
	UpdateFeedbackStatus(ctx context.Context, feedbackID uuid.UUID, req *dto.UpdateFeedbackStatusRequest) (*dto.FeedbackResponse, error)
}

type feedbackUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	feedbackRepo    repository.FeedbackRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	eventService    *service.EventService
}

func NewFeedbackUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	feedbackRepo repository.FeedbackRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	eventService *service.EventService,
) FeedbackUsecase {
	return &feedbackUsecase{
		db:              db,
		log:             log,
		feedbackRepo:    feedbackRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		eventService:    eventService,
	}
}

// CreateFeedback is a public endpoint. Patient and appointment references
// are optional but must point at existing rows when provided.
func (u *feedbackUsecase) CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.PatientID != nil {
		patient, err := u.patientRepo.FindByID(tx, *req.PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient: %+v", err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
	}

	if req.AppointmentID != nil {
		appointment, err := u.appointmentRepo.FindByID(tx, *req.AppointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment: %+v", err)
			return nil, err
		}
		if appointment == nil {
			return nil, ErrAppointmentNotFound
		}
	}

	feedback := &entity.Feedback{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Message:       req.Message,
		Status:        entity.FeedbackStatusNew,
	}

	if err := u.feedbackRepo.Create(tx, feedback); err != nil {
		u.log.Warnf("Failed to create feedback: %+v", err)
		return nil, err
	}

	// Anonymous submission, so the audit row carries no user
	if err := u.auditService.LogCreate(ctx, tx, nil, entity.AuditActionFeedbackCreate, "feedback", feedback.ID.String(), converter.FeedbackToResponse(feedback)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Publish(ctx, "feedback", service.EventActionCreated, feedback.ID.String())

	return converter.FeedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) GetFeedback(ctx context.Context, feedbackID uuid.UUID) (*dto.FeedbackResponse, error) {
	feedback, err := u.feedbackRepo.FindByID(u.db.WithContext(ctx), feedbackID)
	if err != nil {
		u.log.Warnf("Failed to find feedback: %+v", err)
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}

	return converter.FeedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) GetAllFeedback(ctx context.Context, query *dto.ListFeedbackQuery) (*dto.FeedbackListResponse, error) {
	filter := &entity.FeedbackFilter{
		MinRating: query.MinRating,
	}

	if query.Status != "" {
		if !entity.ValidFeedbackStatus(query.Status) {
			return nil, ErrInvalidFeedbackStatus
		}
		filter.Status = query.Status
	}

	items, err := u.feedbackRepo.FindFiltered(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find feedback: %+v", err)
		return nil, err
	}

	responses := converter.FeedbackItemsToResponses(items)

	return &dto.FeedbackListResponse{
		Feedback: responses,
		Total:    len(responses),
	}, nil
}

func (u *feedbackUsecase) UpdateFeedbackStatus(ctx context.Context, feedbackID uuid.UUID, req *dto.UpdateFeedbackStatusRequest) (*dto.FeedbackResponse, error) {
	if !entity.ValidFeedbackStatus(req.Status) {
		return nil, ErrInvalidFeedbackStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	feedback, err := u.feedbackRepo.FindByID(tx, feedbackID)
	if err != nil {
		u.log.Warnf("Failed to find feedback: %+v", err)
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}

	oldStatus := feedback.Status
	feedback.Status = entity.FeedbackStatus(req.Status)

	userID, _ := middleware.GetUserIDFromContext(ctx)
	feedback.ReviewedBy = &userID

	if err := u.feedbackRepo.Update(tx, feedback); err != nil {
		u.log.Warnf("Failed to update feedback status: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionFeedbackStatus, "feedback", feedbackID.String(), string(oldStatus), req.Status); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Publish(ctx, "feedback", service.EventActionStatusChanged, feedbackID.String())

	return converter.FeedbackToResponse(feedback), nil
}

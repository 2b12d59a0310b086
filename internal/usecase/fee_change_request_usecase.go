package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-admin-api/internal/converter"
	"clinic-admin-api/internal/delivery/dto"
	"clinic-admin-api/internal/delivery/http/middleware"
	"clinic-admin-api/internal/domain/entity"
	"clinic-admin-api/internal/domain/repository"
	"clinic-admin-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrFeeRequestNotFound      = errors.New("fee change request not found")
	ErrFeeRequestAlreadyExists = errors.New("a pending fee change request already exists for this doctor")
	ErrFeeRequestNotPending    = errors.New("fee change request has already been decided")
	ErrFeeRequestSameFee       = errors.New("requested fee equals the current fee")
	ErrInvalidFeeRequestStatus = errors.New("invalid fee change request status")
)

type FeeChangeRequestUsecase interface {
	CreateFeeChangeRequest(ctx context.Context, req *dto.CreateFeeChangeRequest) (*dto.FeeChangeRequestResponse, error)
	GetFeeChangeRequest(ctx context.Context, requestID uuid.UUID) (*dto.FeeChangeRequestResponse, error)
	GetAllFeeChangeRequests(ctx context.Context, status string) (*dto.FeeChangeRequestListResponse, error)
	ApproveFeeChangeRequest(ctx context.Context, requestID uuid.UUID) (*dto.FeeChangeRequestResponse, error)
	RejectFeeChangeRequest(ctx context.Context, requestID uuid.UUID) (*dto.FeeChangeRequestResponse, error)
}

type feeChangeRequestUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	feeRepo      repository.FeeChangeRequestRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
	eventService *service.EventService
}

func NewFeeChangeRequestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	feeRepo repository.FeeChangeRequestRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	eventService *service.EventService,
) FeeChangeRequestUsecase {
	return &feeChangeRequestUsecase{
		db:           db,
		log:          log,
		feeRepo:      feeRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
		eventService: eventService,
	}
}

func (u *feeChangeRequestUsecase) CreateFeeChangeRequest(ctx context.Context, req *dto.CreateFeeChangeRequest) (*dto.FeeChangeRequestResponse, error) {
	if req.RequestedFee.IsNegative() {
		return nil, ErrNegativeFee
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if doctor.ProfessionalFee.Equal(req.RequestedFee) {
		return nil, ErrFeeRequestSameFee
	}

	pending, err := u.feeRepo.FindPendingByDoctorID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find pending fee request: %+v", err)
		return nil, err
	}
	if pending != nil {
		return nil, ErrFeeRequestAlreadyExists
	}

	request := &entity.FeeChangeRequest{
		DoctorID:     req.DoctorID,
		CurrentFee:   doctor.ProfessionalFee,
		RequestedFee: req.RequestedFee,
		Reason:       req.Reason,
		Status:       entity.FeeRequestStatusPending,
	}

	if err := u.feeRepo.Create(tx, request); err != nil {
		u.log.Warnf("Failed to create fee change request: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionFeeRequestCreate, "fee_change_request", request.ID.String(), converter.FeeChangeRequestToResponse(request)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Publish(ctx, "fee_change_request", service.EventActionCreated, request.ID.String())

	request.Doctor = *doctor

	return converter.FeeChangeRequestToResponse(request), nil
}

func (u *feeChangeRequestUsecase) GetFeeChangeRequest(ctx context.Context, requestID uuid.UUID) (*dto.FeeChangeRequestResponse, error) {
	request, err := u.feeRepo.FindByID(u.db.WithContext(ctx), requestID)
	if err != nil {
		u.log.Warnf("Failed to find fee change request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrFeeRequestNotFound
	}

	return converter.FeeChangeRequestToResponse(request), nil
}

func (u *feeChangeRequestUsecase) GetAllFeeChangeRequests(ctx context.Context, status string) (*dto.FeeChangeRequestListResponse, error) {
	if status != "" {
		switch entity.FeeRequestStatus(status) {
		case entity.FeeRequestStatusPending, entity.FeeRequestStatusApproved, entity.FeeRequestStatusRejected:
		default:
			return nil, ErrInvalidFeeRequestStatus
		}
	}

	requests, err := u.feeRepo.FindAll(u.db.WithContext(ctx), status)
	if err != nil {
		u.log.Warnf("Failed to find fee change requests: %+v", err)
		return nil, err
	}

	responses := converter.FeeChangeRequestsToResponses(requests)

	return &dto.FeeChangeRequestListResponse{
		Requests: responses,
		Total:    len(responses),
	}, nil
}

// ApproveFeeChangeRequest applies the requested fee to the doctor and marks
// the request approved, both within the same transaction.
func (u *feeChangeRequestUsecase) ApproveFeeChangeRequest(ctx context.Context, requestID uuid.UUID) (*dto.FeeChangeRequestResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.feeRepo.FindByID(tx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find fee change request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrFeeRequestNotFound
	}
	if !request.IsPending() {
		return nil, ErrFeeRequestNotPending
	}

	doctor, err := u.doctorRepo.FindByID(tx, request.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	request.Approve(userID, time.Now())

	if err := u.feeRepo.Update(tx, request); err != nil {
		u.log.Warnf("Failed to update fee change request: %+v", err)
		return nil, err
	}

	oldFee := doctor.ProfessionalFee
	doctor.ProfessionalFee = request.RequestedFee

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor fee: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionFeeRequestApprove, "fee_change_request", requestID.String(), feeAuditValue(oldFee), feeAuditValue(request.RequestedFee)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Publish(ctx, "fee_change_request", service.EventActionStatusChanged, requestID.String())
	u.eventService.Publish(ctx, "doctor", service.EventActionUpdated, doctor.ID.String())

	return converter.FeeChangeRequestToResponse(request), nil
}

func (u *feeChangeRequestUsecase) RejectFeeChangeRequest(ctx context.Context, requestID uuid.UUID) (*dto.FeeChangeRequestResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.feeRepo.FindByID(tx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find fee change request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrFeeRequestNotFound
	}
	if !request.IsPending() {
		return nil, ErrFeeRequestNotPending
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	request.Reject(userID, time.Now())

	if err := u.feeRepo.Update(tx, request); err != nil {
		u.log.Warnf("Failed to update fee change request: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionFeeRequestReject, "fee_change_request", requestID.String(), string(entity.FeeRequestStatusPending), string(entity.FeeRequestStatusRejected)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Publish(ctx, "fee_change_request", service.EventActionStatusChanged, requestID.String())

	return converter.FeeChangeRequestToResponse(request), nil
}

func feeAuditValue(fee decimal.Decimal) string {
	return fee.StringFixed(2)
}

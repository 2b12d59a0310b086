package handler

import (
	"encoding/json"
	"net/http"

	"clinic-admin-api/internal/delivery/dto"
	"clinic-admin-api/internal/usecase"
	"clinic-admin-api/pkg/response"
	"clinic-admin-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type FeeChangeRequestHandler struct {
	feeUsecase usecase.FeeChangeRequestUsecase
	validator  *validator.CustomValidator
}

func NewFeeChangeRequestHandler(feeUsecase usecase.FeeChangeRequestUsecase, validator *validator.CustomValidator) *FeeChangeRequestHandler {
	return &FeeChangeRequestHandler{
		feeUsecase: feeUsecase,
		validator:  validator,
	}
}

func (h *FeeChangeRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFeeChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.feeUsecase.CreateFeeChangeRequest(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrNegativeFee:
			response.BadRequest(w, "Requested fee cannot be negative")
		case usecase.ErrFeeRequestSameFee:
			response.BadRequest(w, "Requested fee equals the current fee")
		case usecase.ErrFeeRequestAlreadyExists:
			response.Conflict(w, "A pending fee change request already exists for this doctor")
		default:
			response.InternalServerError(w, "Failed to create fee change request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Fee change request created successfully", request)
}

func (h *FeeChangeRequestHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	requests, err := h.feeUsecase.GetAllFeeChangeRequests(r.Context(), status)
	if err != nil {
		switch err {
		case usecase.ErrInvalidFeeRequestStatus:
			response.BadRequest(w, "Invalid fee change request status")
		default:
			response.InternalServerError(w, "Failed to get fee change requests")
		}
		return
	}

	response.Success(w, http.StatusOK, "Fee change requests retrieved successfully", requests)
}

func (h *FeeChangeRequestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid fee change request ID", nil)
		return
	}

	request, err := h.feeUsecase.GetFeeChangeRequest(r.Context(), requestID)
	if err != nil {
		switch err {
		case usecase.ErrFeeRequestNotFound:
			response.NotFound(w, "Fee change request not found")
		default:
			response.InternalServerError(w, "Failed to get fee change request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Fee change request retrieved successfully", request)
}

func (h *FeeChangeRequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid fee change request ID", nil)
		return
	}

	request, err := h.feeUsecase.ApproveFeeChangeRequest(r.Context(), requestID)
	if err != nil {
		switch err {
		case usecase.ErrFeeRequestNotFound:
			response.NotFound(w, "Fee change request not found")
		case usecase.ErrFeeRequestNotPending:
			response.Conflict(w, "Fee change request has already been decided")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to approve fee change request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Fee change request approved", request)
}

func (h *FeeChangeRequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid fee change request ID", nil)
		return
	}

	request, err := h.feeUsecase.RejectFeeChangeRequest(r.Context(), requestID)
	if err != nil {
		switch err {
		case usecase.ErrFeeRequestNotFound:
			response.NotFound(w, "Fee change request not found")
		case usecase.ErrFeeRequestNotPending:
			response.Conflict(w, "Fee change request has already been decided")
		default:
			response.InternalServerError(w, "Failed to reject fee change request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Fee change request rejected", request)
}

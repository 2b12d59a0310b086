package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-admin-api/internal/delivery/dto"
	"clinic-admin-api/internal/usecase"
	"clinic-admin-api/pkg/response"
	"clinic-admin-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type FeedbackHandler struct {
	feedbackUsecase usecase.FeedbackUsecase
	validator       *validator.CustomValidator
}

func NewFeedbackHandler(feedbackUsecase usecase.FeedbackUsecase, validator *validator.CustomValidator) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUsecase: feedbackUsecase,
		validator:       validator,
	}
}

// Create is public so patients can submit feedback without an account
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	feedback, err := h.feedbackUsecase.CreateFeedback(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to submit feedback")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Feedback submitted successfully", feedback)
}

func (h *FeedbackHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	minRating, _ := strconv.Atoi(values.Get("min_rating"))

	query := &dto.ListFeedbackQuery{
		Status:    values.Get("status"),
		MinRating: minRating,
	}

	feedback, err := h.feedbackUsecase.GetAllFeedback(r.Context(), query)
	if err != nil {
		switch err {
		case usecase.ErrInvalidFeedbackStatus:
			response.BadRequest(w, "Invalid feedback status")
		default:
			response.InternalServerError(w, "Failed to get feedback")
		}
		return
	}

	response.Success(w, http.StatusOK, "Feedback retrieved successfully", feedback)
}

func (h *FeedbackHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	feedbackID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid feedback ID", nil)
		return
	}

	feedback, err := h.feedbackUsecase.GetFeedback(r.Context(), feedbackID)
	if err != nil {
		switch err {
		case usecase.ErrFeedbackNotFound:
			response.NotFound(w, "Feedback not found")
		default:
			response.InternalServerError(w, "Failed to get feedback")
		}
		return
	}

	response.Success(w, http.StatusOK, "Feedback retrieved successfully", feedback)
}

func (h *FeedbackHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	feedbackID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid feedback ID", nil)
		return
	}

	var req dto.UpdateFeedbackStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	feedback, err := h.feedbackUsecase.UpdateFeedbackStatus(r.Context(), feedbackID, &req)
	if err != nil {
		switch err {
		case usecase.ErrFeedbackNotFound:
			response.NotFound(w, "Feedback not found")
		case usecase.ErrInvalidFeedbackStatus:
			response.BadRequest(w, "Invalid feedback status")
		default:
			response.InternalServerError(w, "Failed to update feedback status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Feedback status updated successfully", feedback)
}

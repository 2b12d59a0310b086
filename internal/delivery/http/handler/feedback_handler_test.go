package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-admin-api/internal/delivery/dto"
	"clinic-admin-api/internal/usecase"
	"clinic-admin-api/pkg/response"
	"clinic-admin-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeedbackUsecase struct {
	createErr error
	created   *dto.FeedbackResponse
}

func (s *stubFeedbackUsecase) CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubFeedbackUsecase) GetFeedback(ctx context.Context, feedbackID uuid.UUID) (*dto.FeedbackResponse, error) {
	return nil, usecase.ErrFeedbackNotFound
}

func (s *stubFeedbackUsecase) GetAllFeedback(ctx context.Context, query *dto.ListFeedbackQuery) (*dto.FeedbackListResponse, error) {
	return &dto.FeedbackListResponse{}, nil
}

func (s *stubFeedbackUsecase) UpdateFeedbackStatus(ctx context.Context, feedbackID uuid.UUID, req *dto.UpdateFeedbackStatusRequest) (*dto.FeedbackResponse, error) {
	return nil, usecase.ErrFeedbackNotFound
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestFeedbackHandlerCreate(t *testing.T) {
	newHandler := func(stub *stubFeedbackUsecase) *FeedbackHandler {
		return NewFeedbackHandler(stub, validator.NewValidator())
	}

	t.Run("valid submission", func(t *testing.T) {
		stub := &stubFeedbackUsecase{created: &dto.FeedbackResponse{ID: uuid.New(), Rating: 5, Status: "new"}}
		h := newHandler(stub)

		body := `{"rating": 5, "message": "Great service"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
	})

	t.Run("malformed body", func(t *testing.T) {
		h := newHandler(&stubFeedbackUsecase{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader("{"))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		h := newHandler(&stubFeedbackUsecase{})

		body := `{"rating": 9, "message": "Too good"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "Validation failed", resp.Message)
	})

	t.Run("unknown patient reference", func(t *testing.T) {
		h := newHandler(&stubFeedbackUsecase{createErr: usecase.ErrPatientNotFound})

		body := `{"patient_id": "` + uuid.NewString() + `", "rating": 3, "message": "Okay visit"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

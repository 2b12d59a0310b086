package service

import (
	"context"
	"errors"
	"testing"

	"clinic-admin-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingAuditRepo struct {
	created []*entity.AuditLog
	err     error
}

func (r *recordingAuditRepo) Create(db *gorm.DB, log *entity.AuditLog) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, log)
	return nil
}

func (r *recordingAuditRepo) FindFiltered(db *gorm.DB, action string, userID *uuid.UUID, limit int) ([]entity.AuditLog, error) {
	return nil, nil
}

func (r *recordingAuditRepo) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	return nil, nil
}

func TestAuditServiceLogCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous actor is recorded with nil user", func(t *testing.T) {
		repo := &recordingAuditRepo{}
		svc := NewAuditService(logrus.New(), repo)

		feedbackID := uuid.New()
		err := svc.LogCreate(ctx, nil, nil, entity.AuditActionFeedbackCreate, "feedback", feedbackID.String(), map[string]int{"rating": 4})
		require.NoError(t, err)

		require.Len(t, repo.created, 1)
		row := repo.created[0]
		assert.Nil(t, row.UserID)
		assert.Equal(t, entity.AuditActionFeedbackCreate, row.Action)
		assert.Equal(t, "feedback", row.Metadata["entity"])
		assert.Equal(t, feedbackID.String(), row.Metadata["entity_id"])
		assert.Nil(t, row.Metadata["old_value"])
		assert.NotNil(t, row.Metadata["new_value"])
	})

	t.Run("acting user is recorded", func(t *testing.T) {
		repo := &recordingAuditRepo{}
		svc := NewAuditService(logrus.New(), repo)

		userID := uuid.New()
		err := svc.LogCreate(ctx, nil, &userID, entity.AuditActionDoctorCreate, "doctor", uuid.NewString(), nil)
		require.NoError(t, err)

		require.Len(t, repo.created, 1)
		require.NotNil(t, repo.created[0].UserID)
		assert.Equal(t, userID, *repo.created[0].UserID)
	})

	t.Run("repository error is returned", func(t *testing.T) {
		repo := &recordingAuditRepo{err: errors.New("insert failed")}
		svc := NewAuditService(logrus.New(), repo)

		err := svc.LogCreate(ctx, nil, nil, entity.AuditActionFeedbackCreate, "feedback", uuid.NewString(), nil)
		assert.Error(t, err)
	})
}

func TestAuditServiceLogUpdate(t *testing.T) {
	repo := &recordingAuditRepo{}
	svc := NewAuditService(logrus.New(), repo)

	userID := uuid.New()
	err := svc.LogUpdate(context.Background(), nil, &userID, entity.AuditActionDoctorStatus, "doctor", uuid.NewString(), "active", "suspended")
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "active", repo.created[0].Metadata["old_value"])
	assert.Equal(t, "suspended", repo.created[0].Metadata["new_value"])
}

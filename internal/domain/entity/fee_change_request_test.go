package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeChangeRequestApprove(t *testing.T) {
	request := &FeeChangeRequest{Status: FeeRequestStatusPending}
	decider := uuid.New()
	decidedAt := time.Now()

	request.Approve(decider, decidedAt)

	assert.Equal(t, FeeRequestStatusApproved, request.Status)
	require.NotNil(t, request.DecidedBy)
	assert.Equal(t, decider, *request.DecidedBy)
	require.NotNil(t, request.DecidedAt)
	assert.Equal(t, decidedAt, *request.DecidedAt)
	assert.False(t, request.IsPending())
}

func TestFeeChangeRequestReject(t *testing.T) {
	request := &FeeChangeRequest{Status: FeeRequestStatusPending}
	decider := uuid.New()

	request.Reject(decider, time.Now())

	assert.Equal(t, FeeRequestStatusRejected, request.Status)
	require.NotNil(t, request.DecidedBy)
	assert.Equal(t, decider, *request.DecidedBy)
	assert.False(t, request.IsPending())
}

func TestFeeChangeRequestIsPending(t *testing.T) {
	assert.True(t, (&FeeChangeRequest{Status: FeeRequestStatusPending}).IsPending())
	assert.False(t, (&FeeChangeRequest{Status: FeeRequestStatusApproved}).IsPending())
	assert.False(t, (&FeeChangeRequest{Status: FeeRequestStatusRejected}).IsPending())
}

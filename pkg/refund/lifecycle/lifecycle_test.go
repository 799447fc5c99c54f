package lifecycle

import (
	"testing"
	"time"

	"eventpass-be/internal/entity"
	"eventpass-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from entity.RefundStatus
		to   entity.RefundStatus
		want bool
	}{
		{entity.RefundStatusPending, entity.RefundStatusApproved, true},
		{entity.RefundStatusPending, entity.RefundStatusRejected, true},
		{entity.RefundStatusPending, entity.RefundStatusCompleted, false},
		{entity.RefundStatusPending, entity.RefundStatusProcessing, false},
		{entity.RefundStatusApproved, entity.RefundStatusProcessing, true},
		{entity.RefundStatusApproved, entity.RefundStatusRejected, false},
		{entity.RefundStatusApproved, entity.RefundStatusPending, false},
		{entity.RefundStatusProcessing, entity.RefundStatusCompleted, true},
		{entity.RefundStatusProcessing, entity.RefundStatusApproved, false},
		{entity.RefundStatusRejected, entity.RefundStatusPending, false},
		{entity.RefundStatusRejected, entity.RefundStatusApproved, false},
		{entity.RefundStatusCompleted, entity.RefundStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(entity.RefundStatusPending))
	assert.False(t, IsTerminal(entity.RefundStatusApproved))
	assert.False(t, IsTerminal(entity.RefundStatusProcessing))
	assert.True(t, IsTerminal(entity.RefundStatusRejected))
	assert.True(t, IsTerminal(entity.RefundStatusCompleted))
}

func TestSubmitInitializesPendingWithHistory(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	req := &entity.RefundRequest{ID: uuid.New()}

	err := Submit(req, now)

	assert.NoError(t, err)
	assert.Equal(t, entity.RefundStatusPending, req.Status)
	if assert.Len(t, req.StatusHistory, 1) {
		change := req.StatusHistory[0]
		assert.Nil(t, change.FromStatus)
		assert.Equal(t, entity.RefundStatusPending, change.ToStatus)
		assert.Equal(t, req.ID, change.RequestID)
		assert.Equal(t, now, change.ChangedAt)
	}
}

func TestSubmitRefusesResubmission(t *testing.T) {
	now := time.Now()
	req := &entity.RefundRequest{ID: uuid.New()}

	assert.NoError(t, Submit(req, now))

	err := Submit(req, now)
	assert.Error(t, err)
	assert.Equal(t, apperror.KindInvalidStateTransition, apperror.KindOf(err))
	assert.Len(t, req.StatusHistory, 1)
}

func TestTransitionAppendsExactlyOneEntry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	req := &entity.RefundRequest{ID: uuid.New()}
	assert.NoError(t, Submit(req, now))

	err := Transition(req, entity.RefundStatusApproved, "Approved by organizer", now.Add(time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, entity.RefundStatusApproved, req.Status)
	if assert.Len(t, req.StatusHistory, 2) {
		change := req.StatusHistory[1]
		if assert.NotNil(t, change.FromStatus) {
			assert.Equal(t, entity.RefundStatusPending, *change.FromStatus)
		}
		assert.Equal(t, entity.RefundStatusApproved, change.ToStatus)
		assert.Equal(t, "Approved by organizer", change.Note)
	}
}

func TestTransitionIllegalStepLeavesRequestUntouched(t *testing.T) {
	now := time.Now()
	req := &entity.RefundRequest{ID: uuid.New()}
	assert.NoError(t, Submit(req, now))
	assert.NoError(t, Transition(req, entity.RefundStatusRejected, "No-shows are not refundable", now))

	err := Transition(req, entity.RefundStatusApproved, "changed my mind", now)

	assert.Error(t, err)
	assert.Equal(t, apperror.KindInvalidStateTransition, apperror.KindOf(err))
	assert.Equal(t, entity.RefundStatusRejected, req.Status)
	assert.Len(t, req.StatusHistory, 2)
}

func TestFullPayoutPath(t *testing.T) {
	now := time.Now()
	req := &entity.RefundRequest{ID: uuid.New()}

	assert.NoError(t, Submit(req, now))
	assert.NoError(t, Transition(req, entity.RefundStatusApproved, "ok", now))
	assert.NoError(t, Transition(req, entity.RefundStatusProcessing, "payout started", now))
	assert.NoError(t, Transition(req, entity.RefundStatusCompleted, "payout completed", now))

	assert.Equal(t, entity.RefundStatusCompleted, req.Status)
	assert.Len(t, req.StatusHistory, 4)
	assert.True(t, IsTerminal(req.Status))
}

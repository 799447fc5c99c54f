// Package lifecycle owns the refund request state machine. Every status
// mutation in the system goes through Transition (or Submit for the
// creation entry) so the audit trail can never drift from the status.
package lifecycle

import (
	"fmt"
	"time"

	"eventpass-be/internal/entity"
	"eventpass-be/internal/pkg/apperror"

	"github.com/google/uuid"
)

var allowed = map[entity.RefundStatus][]entity.RefundStatus{
	entity.RefundStatusPending:    {entity.RefundStatusApproved, entity.RefundStatusRejected},
	entity.RefundStatusApproved:   {entity.RefundStatusProcessing},
	entity.RefundStatusProcessing: {entity.RefundStatusCompleted},
	entity.RefundStatusRejected:   {},
	entity.RefundStatusCompleted:  {},
}

// IsTerminal reports whether no further transition is defined from s.
func IsTerminal(s entity.RefundStatus) bool {
	return len(allowed[s]) == 0
}

// CanTransition reports whether from -> to is a legal step.
func CanTransition(from, to entity.RefundStatus) bool {
	for _, next := range allowed[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Submit initializes a freshly built request: status pending plus the
// creation history entry (nil -> pending). It refuses requests that
// already carry history.
func Submit(req *entity.RefundRequest, now time.Time) error {
	if len(req.StatusHistory) > 0 || req.Status != "" {
		return apperror.InvalidStateTransition("refund request has already been submitted")
	}
	req.Status = entity.RefundStatusPending
	req.StatusHistory = append(req.StatusHistory, entity.RefundStatusChange{
		ID:        uuid.New(),
		RequestID: req.ID,
		ToStatus:  entity.RefundStatusPending,
		Note:      "Request submitted",
		ChangedAt: now,
	})
	return nil
}

// Transition moves req to the target status, appending exactly one
// history entry. On an illegal step the request is left untouched.
func Transition(req *entity.RefundRequest, to entity.RefundStatus, note string, now time.Time) error {
	if !CanTransition(req.Status, to) {
		return apperror.InvalidStateTransition(
			fmt.Sprintf("cannot move refund request from %s to %s", req.Status, to))
	}
	from := req.Status
	req.StatusHistory = append(req.StatusHistory, entity.RefundStatusChange{
		ID:         uuid.New(),
		RequestID:  req.ID,
		FromStatus: &from,
		ToStatus:   to,
		Note:       note,
		ChangedAt:  now,
	})
	req.Status = to
	return nil
}

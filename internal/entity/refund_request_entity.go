package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefundStatus is the lifecycle state of a refund request.
type RefundStatus string

const (
	RefundStatusPending    RefundStatus = "pending"
	RefundStatusApproved   RefundStatus = "approved"
	RefundStatusRejected   RefundStatus = "rejected"
	RefundStatusProcessing RefundStatus = "processing"
	RefundStatusCompleted  RefundStatus = "completed"
)

// RefundReason is why the holder (or the organizer) wants the ticket
// refunded.
type RefundReason string

const (
	ReasonCannotAttend      RefundReason = "cannot_attend"
	ReasonDuplicatePurchase RefundReason = "duplicate_purchase"
	ReasonWrongTicketType   RefundReason = "wrong_ticket_type"
	ReasonEventCancelled    RefundReason = "event_cancelled"
	ReasonEventRescheduled  RefundReason = "event_rescheduled"
	ReasonOrganizerDecision RefundReason = "organizer_decision"
	ReasonOther             RefundReason = "other"
)

// RefundStatusChange is one immutable entry in a request's audit trail.
// FromStatus is nil only for the creation entry.
type RefundStatusChange struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	FromStatus *RefundStatus
	ToStatus   RefundStatus
	Note       string
	ChangedAt  time.Time
}

// RefundRequest is the central workflow entity. Holder details are
// denormalized from the ticket at submission time so organizer views do
// not need joins against the user store.
type RefundRequest struct {
	ID           uuid.UUID
	TicketID     uuid.UUID
	TicketNumber string
	EventID      uuid.UUID
	EventTitle   string

	UserID    uuid.UUID
	UserName  string
	UserEmail string
	UserPhone string

	Reason   RefundReason
	UserNote string

	RequestedAmount float64
	ApprovedAmount  *float64
	Status          RefundStatus
	ReviewerNote    string

	OriginalPurchaseDate time.Time
	RequestedAt          time.Time

	StatusHistory []RefundStatusChange

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayableAmount is what the payout pipeline should actually move:
// the approved amount when the organizer set one, the requested amount
// otherwise.
func (r *RefundRequest) PayableAmount() float64 {
	if r.ApprovedAmount != nil {
		return *r.ApprovedAmount
	}
	return r.RequestedAmount
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Attendee-Side ---

type EligibilityCheckRequest struct {
	TicketId uuid.UUID `json:"ticket_id" validate:"required"`
}

type EligibilityResponse struct {
	IsEligible       bool       `json:"is_eligible"`
	Reason           string     `json:"reason,omitempty"`
	RefundableAmount float64    `json:"refundable_amount"`
	RefundPercentage float64    `json:"refund_percentage"`
	ProcessingFee    float64    `json:"processing_fee"`
	NetRefund        float64    `json:"net_refund"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	PolicyText       string     `json:"policy_text,omitempty"`
}

type SubmitRefundRequest struct {
	TicketId uuid.UUID `json:"ticket_id" validate:"required"`
	Reason   string    `json:"reason" validate:"required,oneof=cannot_attend duplicate_purchase wrong_ticket_type other"`
	UserNote string    `json:"user_note,omitempty" validate:"max=1000"`
}

type StatusChangeResponse struct {
	FromStatus *string   `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	Note       string    `json:"note,omitempty"`
	ChangedAt  time.Time `json:"changed_at"`
}

type RefundRequestResponse struct {
	Id              uuid.UUID              `json:"id"`
	TicketNumber    string                 `json:"ticket_number"`
	EventTitle      string                 `json:"event_title"`
	Reason          string                 `json:"reason"`
	UserNote        string                 `json:"user_note,omitempty"`
	RequestedAmount float64                `json:"requested_amount"`
	ApprovedAmount  *float64               `json:"approved_amount,omitempty"`
	Status          string                 `json:"status"`
	ReviewerNote    string                 `json:"reviewer_note,omitempty"`
	RequestedAt     time.Time              `json:"requested_at"`
	StatusHistory   []StatusChangeResponse `json:"status_history,omitempty"`
}

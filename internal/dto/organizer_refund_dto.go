package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Organizer-Side Refund Management ---

type OrganizerRefundListResponse struct {
	Id              uuid.UUID           `json:"id"`
	Requester       RefundRequesterInfo `json:"requester"`
	TicketNumber    string              `json:"ticket_number"`
	EventTitle      string              `json:"event_title"`
	Reason          string              `json:"reason"`
	UserNote        string              `json:"user_note,omitempty"`
	RequestedAmount float64             `json:"requested_amount"`
	ApprovedAmount  *float64            `json:"approved_amount,omitempty"`
	Status          string              `json:"status"`
	RequestedAt     time.Time           `json:"requested_at"`
}

type RefundRequesterInfo struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone,omitempty"`
}

type ApproveRefundRequest struct {
	ApprovedAmount *float64 `json:"approved_amount,omitempty" validate:"omitempty,gte=0"`
	ReviewerNote   string   `json:"reviewer_note,omitempty" validate:"max=1000"`
}

type RejectRefundRequest struct {
	ReviewerNote string `json:"reviewer_note" validate:"required,min=3,max=1000"`
}

type DecisionResponse struct {
	RequestId      uuid.UUID `json:"request_id"`
	Status         string    `json:"status"`
	ApprovedAmount *float64  `json:"approved_amount,omitempty"`
	DecidedAt      time.Time `json:"decided_at"`
}

type RefundSummaryResponse struct {
	PendingCount       int     `json:"pending_count"`
	ApprovedCount      int     `json:"approved_count"`
	RejectedCount      int     `json:"rejected_count"`
	MonthlyRefundTotal float64 `json:"monthly_refund_total"`
}

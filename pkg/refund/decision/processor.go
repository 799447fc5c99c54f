// Package decision applies organizer rulings to pending refund requests.
// It owns the one genuine safety property in this workflow: a request is
// decided at most once, even under concurrent deciders.
package decision

import (
	"context"
	"fmt"
	"time"

	"eventpass-be/internal/dto"
	"eventpass-be/internal/entity"
	"eventpass-be/internal/pkg/apperror"
	"eventpass-be/internal/pkg/logger"
	"eventpass-be/internal/repository/specification"
	"eventpass-be/internal/repository/unitofwork"
	"eventpass-be/pkg/refund/lifecycle"
	refundEvents "eventpass-be/pkg/refund/events"

	"github.com/google/uuid"
)

// PayoutQueue hands approved requests to the payout pipeline. Enqueue
// failures are logged, not surfaced: the retry sweep picks up approved
// requests that never made it onto the queue.
type PayoutQueue interface {
	EnqueuePayout(ctx context.Context, requestId uuid.UUID) error
}

// Processor handles refund approval/rejection workflow
type Processor struct {
	logger    logger.ILogger
	publisher refundEvents.Publisher
	payouts   PayoutQueue
	now       func() time.Time
}

// NewProcessor creates a new refund decision processor
func NewProcessor(logger logger.ILogger, publisher refundEvents.Publisher, payouts PayoutQueue) *Processor {
	return &Processor{
		logger:    logger,
		publisher: publisher,
		payouts:   payouts,
		now:       time.Now,
	}
}

// GetAll retrieves paginated refund requests for one organizer's events,
// with optional status filter.
func (p *Processor) GetAll(ctx context.Context, uow unitofwork.UnitOfWork, organizerId uuid.UUID, page, limit int, status string) ([]*entity.RefundRequest, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	specs := []specification.Specification{
		specification.ByOrganizerID{OrganizerID: organizerId},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}
	specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	specs = append(specs, specification.OrderBy{Field: "refund_requests.requested_at", Desc: true})

	return uow.RefundRequestRepository().FindAll(ctx, specs...)
}

// Approve approves a pending refund request, in full when no amount is
// given, partially otherwise.
func (p *Processor) Approve(ctx context.Context, uow unitofwork.UnitOfWork, organizerId, requestId uuid.UUID, req dto.ApproveRefundRequest) (*entity.RefundRequest, error) {
	request, err := p.findOwned(ctx, uow, organizerId, requestId)
	if err != nil {
		return nil, err
	}

	if request.Status != entity.RefundStatusPending {
		return nil, apperror.InvalidStateTransition("refund request has already been decided")
	}

	approvedAmount := request.RequestedAmount
	if req.ApprovedAmount != nil {
		if *req.ApprovedAmount < 0 || *req.ApprovedAmount > request.RequestedAmount {
			return nil, apperror.InvalidAmount(fmt.Sprintf(
				"approved amount must be between 0 and the requested %.2f", request.RequestedAmount))
		}
		approvedAmount = *req.ApprovedAmount
	}

	request.ApprovedAmount = &approvedAmount
	request.ReviewerNote = req.ReviewerNote

	note := req.ReviewerNote
	if note == "" {
		note = "Approved by organizer"
	}
	if err := lifecycle.Transition(request, entity.RefundStatusApproved, note, p.now()); err != nil {
		return nil, err
	}
	change := request.StatusHistory[len(request.StatusHistory)-1]

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.ServiceUnavailable("could not start decision transaction", err)
	}
	defer uow.Rollback()

	if err := uow.RefundRequestRepository().TransitionStatus(ctx, request, entity.RefundStatusPending, &change); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.ServiceUnavailable("could not commit decision", err)
	}

	p.logger.Info("ORGANIZER", "Approved Refund Request", map[string]interface{}{
		"requestId":      requestId.String(),
		"ticketId":       request.TicketID.String(),
		"approvedAmount": approvedAmount,
		"reviewerNote":   req.ReviewerNote,
	})

	p.publisher.PublishRefundApproved(ctx, requestId, request.TicketID, request.UserID, approvedAmount, string(request.Reason))

	if err := p.payouts.EnqueuePayout(ctx, requestId); err != nil {
		p.logger.Error("ORGANIZER", "Failed to enqueue payout", map[string]interface{}{
			"requestId": requestId.String(),
			"error":     err.Error(),
		})
	}

	return request, nil
}

// Reject rejects a pending refund request. The reviewer note is mandatory
// because it is surfaced to the requester as the rejection reason.
func (p *Processor) Reject(ctx context.Context, uow unitofwork.UnitOfWork, organizerId, requestId uuid.UUID, req dto.RejectRefundRequest) (*entity.RefundRequest, error) {
	if req.ReviewerNote == "" {
		return nil, fmt.Errorf("reviewer note is required to reject a refund request")
	}

	request, err := p.findOwned(ctx, uow, organizerId, requestId)
	if err != nil {
		return nil, err
	}

	if request.Status != entity.RefundStatusPending {
		return nil, apperror.InvalidStateTransition("refund request has already been decided")
	}

	request.ReviewerNote = req.ReviewerNote
	if err := lifecycle.Transition(request, entity.RefundStatusRejected, req.ReviewerNote, p.now()); err != nil {
		return nil, err
	}
	change := request.StatusHistory[len(request.StatusHistory)-1]

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.ServiceUnavailable("could not start decision transaction", err)
	}
	defer uow.Rollback()

	if err := uow.RefundRequestRepository().TransitionStatus(ctx, request, entity.RefundStatusPending, &change); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.ServiceUnavailable("could not commit decision", err)
	}

	p.logger.Info("ORGANIZER", "Rejected Refund Request", map[string]interface{}{
		"requestId":    requestId.String(),
		"ticketId":     request.TicketID.String(),
		"reviewerNote": req.ReviewerNote,
	})

	p.publisher.PublishRefundRejected(ctx, requestId, request.TicketID, request.UserID, req.ReviewerNote)

	return request, nil
}

// findOwned loads a request and verifies the organizer owns its event.
func (p *Processor) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, organizerId, requestId uuid.UUID) (*entity.RefundRequest, error) {
	request, err := uow.RefundRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NotFound("refund request not found")
	}

	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: request.EventID})
	if err != nil {
		return nil, err
	}
	if event == nil || event.OrganizerID != organizerId {
		return nil, apperror.NotFound("refund request not found")
	}

	return request, nil
}

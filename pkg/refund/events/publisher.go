package events

import (
	"context"
	"time"

	"eventpass-be/internal/pkg/logger"
	pkgEvents "eventpass-be/pkg/events"
	pktNats "eventpass-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts analytics/notification event publishing for the
// refund workflow. All publishes are fire-and-forget: failures are logged
// and never surface to the caller, so a broken bus cannot block a
// decision.
type Publisher interface {
	PublishRefundRequested(ctx context.Context, requestId, ticketId, userId uuid.UUID, amount float64, reason string)
	PublishRefundApproved(ctx context.Context, requestId, ticketId, userId uuid.UUID, amount float64, reason string)
	PublishRefundRejected(ctx context.Context, requestId, ticketId, userId uuid.UUID, reviewerNote string)
	PublishPayoutStarted(ctx context.Context, requestId uuid.UUID, amount float64)
	PublishPayoutCompleted(ctx context.Context, requestId, ticketId, userId uuid.UUID, amount float64)
}

// NatsPublisher implements Publisher using NATS
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

// NewNatsPublisher creates a new NATS-based event publisher
func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.publisher == nil {
		return
	}

	now := time.Now()
	data["occurred_at"] = now
	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: now,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("REFUND", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishRefundRequested emits REFUND_REQUESTED event
func (p *NatsPublisher) PublishRefundRequested(ctx context.Context, requestId, ticketId, userId uuid.UUID, amount float64, reason string) {
	p.publish(ctx, "REFUND_REQUESTED", map[string]interface{}{
		"request_id":  requestId,
		"ticket_id":   ticketId,
		"user_id":     userId,
		"amount":      amount,
		"reason":      reason,
		"entity_type": "refund_request",
		"entity_id":   requestId.String(),
	})
}

// PublishRefundApproved emits REFUND_APPROVED event
func (p *NatsPublisher) PublishRefundApproved(ctx context.Context, requestId, ticketId, userId uuid.UUID, amount float64, reason string) {
	p.publish(ctx, "REFUND_APPROVED", map[string]interface{}{
		"request_id":  requestId,
		"ticket_id":   ticketId,
		"user_id":     userId,
		"amount":      amount,
		"reason":      reason,
		"entity_type": "refund_request",
		"entity_id":   requestId.String(),
	})
}

// PublishRefundRejected emits REFUND_REJECTED event
func (p *NatsPublisher) PublishRefundRejected(ctx context.Context, requestId, ticketId, userId uuid.UUID, reviewerNote string) {
	p.publish(ctx, "REFUND_REJECTED", map[string]interface{}{
		"request_id":    requestId,
		"ticket_id":     ticketId,
		"user_id":       userId,
		"reviewer_note": reviewerNote,
		"entity_type":   "refund_request",
		"entity_id":     requestId.String(),
	})
}

// PublishPayoutStarted emits REFUND_PAYOUT_STARTED event
func (p *NatsPublisher) PublishPayoutStarted(ctx context.Context, requestId uuid.UUID, amount float64) {
	p.publish(ctx, "REFUND_PAYOUT_STARTED", map[string]interface{}{
		"request_id":  requestId,
		"amount":      amount,
		"entity_type": "refund_request",
		"entity_id":   requestId.String(),
	})
}

// PublishPayoutCompleted emits REFUND_PAYOUT_COMPLETED event
func (p *NatsPublisher) PublishPayoutCompleted(ctx context.Context, requestId, ticketId, userId uuid.UUID, amount float64) {
	p.publish(ctx, "REFUND_PAYOUT_COMPLETED", map[string]interface{}{
		"request_id":  requestId,
		"ticket_id":   ticketId,
		"user_id":     userId,
		"amount":      amount,
		"entity_type": "refund_request",
		"entity_id":   requestId.String(),
	})
}

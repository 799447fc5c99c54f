package service

import (
	"context"
	"encoding/json"
	"time"

	"eventpass-be/internal/dto"
	"eventpass-be/internal/entity"
	"eventpass-be/internal/pkg/logger"
	"eventpass-be/internal/repository/specification"
	"eventpass-be/internal/repository/unitofwork"
	"eventpass-be/pkg/payout"
	refundEvents "eventpass-be/pkg/refund/events"
	"eventpass-be/pkg/refund/lifecycle"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPayoutConsumerService interface {
	Consume(ctx context.Context) error
	RetryStuckPayouts(ctx context.Context) error
}

// payoutConsumerService drains the payout queue: for each approved
// request it moves the money through the gateway and walks the request
// approved -> processing -> completed. Both hops are compare-and-swap
// guarded so a redelivered job can never double-disburse or rewrite a
// finished request.
type payoutConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	gateway    payout.Gateway
	publisher  refundEvents.Publisher
	logger     logger.ILogger
	queue      *PayoutQueueService
	now        func() time.Time
}

func NewPayoutConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	gateway payout.Gateway,
	publisher refundEvents.Publisher,
	queue *PayoutQueueService,
	log logger.ILogger,
) IPayoutConsumerService {
	return &payoutConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		gateway:    gateway,
		publisher:  publisher,
		queue:      queue,
		logger:     log,
		now:        time.Now,
	}
}

func (s *payoutConsumerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *payoutConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PayoutJobMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Error("PAYOUT", "Failed to unmarshal payout job", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack malformed messages to prevent infinite retry
		return
	}

	s.logger.Info("PAYOUT", "Processing payout job", map[string]interface{}{"requestId": payload.RequestId.String()})

	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RefundRequestRepository().FindOne(ctx, specification.ByID{ID: payload.RequestId})
	if err != nil {
		s.logger.Error("PAYOUT", "Failed to load refund request", map[string]interface{}{
			"requestId": payload.RequestId.String(),
			"error":     err.Error(),
		})
		msg.Nack()
		return
	}
	if request == nil {
		s.logger.Warn("PAYOUT", "Refund request not found, dropping job", map[string]interface{}{"requestId": payload.RequestId.String()})
		msg.Ack()
		return
	}

	switch request.Status {
	case entity.RefundStatusApproved:
		// Claim the job before touching money: if another worker already
		// moved it to processing, the CAS misses and we drop the duplicate.
		if err := s.transition(ctx, uow, request, entity.RefundStatusApproved, entity.RefundStatusProcessing, "Payout started"); err != nil {
			s.logger.Warn("PAYOUT", "Request already claimed by another worker", map[string]interface{}{"requestId": request.ID.String()})
			msg.Ack()
			return
		}
		s.publisher.PublishPayoutStarted(ctx, request.ID, request.PayableAmount())

	case entity.RefundStatusProcessing:
		// Redelivery after a crash mid-disbursement. The gateway call is
		// idempotent on request id, so resuming is safe.
		s.logger.Info("PAYOUT", "Resuming in-flight payout", map[string]interface{}{"requestId": request.ID.String()})

	default:
		s.logger.Info("PAYOUT", "Request not payable, dropping job", map[string]interface{}{
			"requestId": request.ID.String(),
			"status":    string(request.Status),
		})
		msg.Ack()
		return
	}

	receipt, err := s.gateway.Disburse(ctx, request.ID, request.TicketNumber, request.PayableAmount(), string(request.Reason))
	if err != nil {
		s.logger.Error("PAYOUT", "Gateway disbursement failed", map[string]interface{}{
			"requestId": request.ID.String(),
			"error":     err.Error(),
		})
		msg.Nack() // Nack so the job is redelivered; the request stays processing
		return
	}

	if err := s.transition(ctx, uow, request, entity.RefundStatusProcessing, entity.RefundStatusCompleted, "Payout completed: "+receipt.Reference); err != nil {
		s.logger.Error("PAYOUT", "Failed to complete refund request", map[string]interface{}{
			"requestId": request.ID.String(),
			"error":     err.Error(),
		})
		msg.Nack()
		return
	}

	if err := s.markTicketRefunded(ctx, request.TicketID); err != nil {
		// The refund itself is done; a stale ticket status is repairable
		// and must not requeue a completed disbursement.
		s.logger.Error("PAYOUT", "Failed to mark ticket refunded", map[string]interface{}{
			"ticketId": request.TicketID.String(),
			"error":    err.Error(),
		})
	}

	s.publisher.PublishPayoutCompleted(ctx, request.ID, request.TicketID, request.UserID, request.PayableAmount())

	s.logger.Info("PAYOUT", "Payout completed", map[string]interface{}{
		"requestId": request.ID.String(),
		"amount":    request.PayableAmount(),
		"reference": receipt.Reference,
	})
	msg.Ack()
}

func (s *payoutConsumerService) transition(ctx context.Context, uow unitofwork.UnitOfWork, request *entity.RefundRequest, from, to entity.RefundStatus, note string) error {
	if err := lifecycle.Transition(request, to, note, s.now()); err != nil {
		return err
	}
	change := request.StatusHistory[len(request.StatusHistory)-1]

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.RefundRequestRepository().TransitionStatus(ctx, request, from, &change); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *payoutConsumerService) markTicketRefunded(ctx context.Context, ticketId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.TicketRepository().MarkRefunded(ctx, ticketId); err != nil {
		return err
	}
	return uow.Commit()
}

// RetryStuckPayouts re-enqueues approved requests that never reached the
// queue (enqueue failures are logged, not surfaced) and processing
// requests older than an hour whose worker died mid-flight. Meant to run
// periodically from the bootstrap.
func (s *payoutConsumerService) RetryStuckPayouts(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stuck, err := uow.RefundRequestRepository().FindAll(ctx,
		specification.ByStatusIn{Statuses: []string{
			string(entity.RefundStatusApproved),
			string(entity.RefundStatusProcessing),
		}},
	)
	if err != nil {
		return err
	}

	cutoff := s.now().Add(-time.Hour)
	requeued := 0
	for _, request := range stuck {
		if request.Status == entity.RefundStatusProcessing && request.UpdatedAt.After(cutoff) {
			continue // likely still in flight
		}
		if err := s.queue.EnqueuePayout(ctx, request.ID); err != nil {
			s.logger.Error("PAYOUT", "Failed to re-enqueue stuck payout", map[string]interface{}{
				"requestId": request.ID.String(),
				"error":     err.Error(),
			})
			continue
		}
		requeued++
	}

	if requeued > 0 {
		s.logger.Info("PAYOUT", "Re-enqueued stuck payouts", map[string]interface{}{"count": requeued})
	}
	return nil
}

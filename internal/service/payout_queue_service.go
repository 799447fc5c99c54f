package service

import (
	"context"
	"encoding/json"

	"eventpass-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// PayoutQueueService publishes payout jobs onto the in-process queue.
// It satisfies decision.PayoutQueue.
type PayoutQueueService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPayoutQueueService(pubSub *gochannel.GoChannel, topicName string) *PayoutQueueService {
	return &PayoutQueueService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (s *PayoutQueueService) EnqueuePayout(ctx context.Context, requestId uuid.UUID) error {
	payload, err := json.Marshal(dto.PayoutJobMessage{RequestId: requestId})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	return s.pubSub.Publish(s.topicName, msg)
}

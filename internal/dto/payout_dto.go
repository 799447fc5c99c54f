package dto

import "github.com/google/uuid"

// PayoutJobMessage rides the in-process payout queue from the decision
// engine to the payout consumer.
type PayoutJobMessage struct {
	RequestId uuid.UUID `json:"request_id"`
}

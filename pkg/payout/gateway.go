// Package payout moves approved refund money back to the ticket holder.
// The refund core only records logical state; everything touching payment
// rails lives behind the Gateway interface.
package payout

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Receipt is the gateway's confirmation of a completed disbursement.
type Receipt struct {
	Reference   string
	CompletedAt time.Time
}

// Gateway executes the actual money movement for an approved refund.
// Implementations must be safe to retry: the request id doubles as the
// idempotency key.
type Gateway interface {
	Disburse(ctx context.Context, requestId uuid.UUID, orderId string, amount float64, reason string) (*Receipt, error)
}

package payout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

// MidtransGateway issues provider-side refunds through the Midtrans Core
// API. The original charge's order id is the refund target; the refund
// request id is passed as the refund key so provider retries stay
// idempotent.
type MidtransGateway struct {
	client coreapi.Client
}

func NewMidtransGateway(serverKey string, production bool) *MidtransGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	var client coreapi.Client
	client.New(serverKey, env)

	return &MidtransGateway{client: client}
}

func (g *MidtransGateway) Disburse(ctx context.Context, requestId uuid.UUID, orderId string, amount float64, reason string) (*Receipt, error) {
	req := &coreapi.RefundReq{
		RefundKey: requestId.String(),
		Amount:    int64(amount),
		Reason:    reason,
	}

	res, midErr := g.client.RefundTransaction(orderId, req)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans refund for order %s failed: %w", orderId, midErr)
	}

	return &Receipt{
		Reference:   res.RefundKey,
		CompletedAt: time.Now(),
	}, nil
}

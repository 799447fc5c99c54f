package payout

import (
	"context"
	"fmt"
	"time"

	"eventpass-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// MockGateway stands in when no Midtrans server key is configured
// (local development, tests). It confirms every disbursement after
// logging it.
type MockGateway struct {
	logger logger.ILogger
}

func NewMockGateway(logger logger.ILogger) *MockGateway {
	return &MockGateway{logger: logger}
}

func (g *MockGateway) Disburse(ctx context.Context, requestId uuid.UUID, orderId string, amount float64, reason string) (*Receipt, error) {
	g.logger.Info("PAYOUT", "Mock disbursement", map[string]interface{}{
		"request_id": requestId.String(),
		"order_id":   orderId,
		"amount":     amount,
		"reason":     reason,
	})
	return &Receipt{
		Reference:   fmt.Sprintf("mock-%s", requestId.String()),
		CompletedAt: time.Now(),
	}, nil
}

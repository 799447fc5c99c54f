package summary

import (
	"testing"
	"time"

	"eventpass-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func request(status entity.RefundStatus, amount float64, requestedAt time.Time) *entity.RefundRequest {
	return &entity.RefundRequest{
		ID:              uuid.New(),
		Status:          status,
		RequestedAmount: amount,
		RequestedAt:     requestedAt,
	}
}

func TestSummarizeCounts(t *testing.T) {
	asOf := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	requests := []*entity.RefundRequest{
		request(entity.RefundStatusPending, 10000, thisMonth),
		request(entity.RefundStatusPending, 20000, thisMonth),
		request(entity.RefundStatusApproved, 30000, thisMonth),
		request(entity.RefundStatusCompleted, 40000, thisMonth),
		request(entity.RefundStatusRejected, 50000, thisMonth),
		request(entity.RefundStatusProcessing, 60000, thisMonth),
	}

	s := Summarize(requests, asOf)

	assert.Equal(t, 2, s.PendingCount)
	// Approved and completed both count as approved.
	assert.Equal(t, 2, s.ApprovedCount)
	assert.Equal(t, 1, s.RejectedCount)
	// 30000 + 40000; pending, rejected and processing are excluded.
	assert.InDelta(t, 70000.0, s.MonthlyRefundTotal, 0.001)
}

func TestSummarizeMonthlyWindow(t *testing.T) {
	asOf := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	requests := []*entity.RefundRequest{
		request(entity.RefundStatusApproved, 10000, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		request(entity.RefundStatusApproved, 20000, time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC)),
		// Previous month, excluded from the total but still counted.
		request(entity.RefundStatusApproved, 40000, time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)),
		// Same month last year.
		request(entity.RefundStatusCompleted, 80000, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)),
	}

	s := Summarize(requests, asOf)

	assert.Equal(t, 4, s.ApprovedCount)
	assert.InDelta(t, 30000.0, s.MonthlyRefundTotal, 0.001)
}

func TestSummarizeUsesApprovedAmountWhenSet(t *testing.T) {
	asOf := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	partial := 25000.0
	req := request(entity.RefundStatusApproved, 50000, asOf)
	req.ApprovedAmount = &partial

	s := Summarize([]*entity.RefundRequest{req}, asOf)

	assert.InDelta(t, 25000.0, s.MonthlyRefundTotal, 0.001)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, time.Now())

	assert.Zero(t, s.PendingCount)
	assert.Zero(t, s.ApprovedCount)
	assert.Zero(t, s.RejectedCount)
	assert.Zero(t, s.MonthlyRefundTotal)
}

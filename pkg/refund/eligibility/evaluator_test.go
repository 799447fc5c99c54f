package eligibility

import (
	"testing"
	"time"

	"eventpass-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func fixtureTicket(price float64) *entity.Ticket {
	return &entity.Ticket{
		ID:     uuid.New(),
		Status: entity.TicketStatusValid,
		TicketType: entity.TicketType{
			Name:  "Ordinary",
			Price: price,
		},
	}
}

func fixtureEvent(startsIn time.Duration, now time.Time) *entity.Event {
	return &entity.Event{
		ID:        uuid.New(),
		Title:     "Kampala Jazz Night",
		StartDate: now.Add(startsIn),
	}
}

func TestEvaluateTieredPolicy(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// 48h request deadline, full refund at 72h+, 5% processing fee,
	// no partial tier and no base percentage.
	policy := &entity.RefundPolicy{
		IsRefundable:            true,
		RefundDeadlineHours:     48,
		FullRefundDeadlineHours: intPtr(72),
		ProcessingFeePercentage: 0.05,
	}

	tests := []struct {
		name         string
		startsIn     time.Duration
		wantEligible bool
		wantNet      float64
		wantFee      float64
		wantPct      float64
	}{
		{
			name:         "inside full refund window",
			startsIn:     100 * time.Hour,
			wantEligible: true,
			wantPct:      1.0,
			wantFee:      5000,
			wantNet:      95000,
		},
		{
			name:         "between tiers with no covering percentage",
			startsIn:     50 * time.Hour,
			wantEligible: false,
		},
		{
			name:         "past the request deadline",
			startsIn:     10 * time.Hour,
			wantEligible: false,
		},
		{
			name:         "exactly at the full refund boundary",
			startsIn:     72 * time.Hour,
			wantEligible: true,
			wantPct:      1.0,
			wantFee:      5000,
			wantNet:      95000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := fixtureTicket(100000)
			event := fixtureEvent(tt.startsIn, now)

			result := Evaluate(ticket, event, policy, now)

			assert.Equal(t, tt.wantEligible, result.IsEligible)
			assert.Equal(t, 100000.0, result.RefundableAmount)
			if tt.wantEligible {
				assert.Equal(t, tt.wantPct, result.RefundPercentage)
				assert.InDelta(t, tt.wantFee, result.ProcessingFee, 0.001)
				assert.InDelta(t, tt.wantNet, result.NetRefund, 0.001)
				assert.Empty(t, result.Reason)
			} else {
				assert.NotEmpty(t, result.Reason)
				assert.Zero(t, result.NetRefund)
			}
		})
	}
}

func TestEvaluatePartialTier(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	policy := &entity.RefundPolicy{
		IsRefundable:               true,
		RefundDeadlineHours:        24,
		FullRefundDeadlineHours:    intPtr(72),
		PartialRefundDeadlineHours: intPtr(24),
		PartialRefundPercentage:    floatPtr(0.5),
		ProcessingFeePercentage:    0.05,
	}

	ticket := fixtureTicket(100000)
	event := fixtureEvent(48*time.Hour, now)

	result := Evaluate(ticket, event, policy, now)

	assert.True(t, result.IsEligible)
	assert.Equal(t, 0.5, result.RefundPercentage)
	// 50% of 100000 = 50000 gross, 5% fee on the gross
	assert.InDelta(t, 2500.0, result.ProcessingFee, 0.001)
	assert.InDelta(t, 47500.0, result.NetRefund, 0.001)
}

func TestEvaluateUntieredPolicyRefundsFull(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	policy := &entity.RefundPolicy{
		IsRefundable:            true,
		RefundDeadlineHours:     48,
		ProcessingFeePercentage: 0,
	}

	result := Evaluate(fixtureTicket(80000), fixtureEvent(100*time.Hour, now), policy, now)

	assert.True(t, result.IsEligible)
	assert.Equal(t, 1.0, result.RefundPercentage)
	assert.InDelta(t, 80000.0, result.NetRefund, 0.001)
	assert.Zero(t, result.ProcessingFee)
}

func TestEvaluateBasePercentageCoversGap(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	policy := &entity.RefundPolicy{
		IsRefundable:            true,
		RefundDeadlineHours:     24,
		FullRefundDeadlineHours: intPtr(72),
		BaseRefundPercentage:    floatPtr(0.25),
		ProcessingFeePercentage: 0,
	}

	result := Evaluate(fixtureTicket(100000), fixtureEvent(48*time.Hour, now), policy, now)

	assert.True(t, result.IsEligible)
	assert.Equal(t, 0.25, result.RefundPercentage)
	assert.InDelta(t, 25000.0, result.NetRefund, 0.001)
}

func TestEvaluateNonRefundableEvent(t *testing.T) {
	now := time.Now()
	policy := &entity.RefundPolicy{
		IsRefundable:        false,
		RefundDeadlineHours: 48,
	}

	result := Evaluate(fixtureTicket(100000), fixtureEvent(200*time.Hour, now), policy, now)

	assert.False(t, result.IsEligible)
	assert.Equal(t, "This event is non-refundable.", result.Reason)
}

func TestEvaluateAlreadyRefundedTicket(t *testing.T) {
	now := time.Now()
	policy := &entity.RefundPolicy{
		IsRefundable:        true,
		RefundDeadlineHours: 48,
	}

	ticket := fixtureTicket(100000)
	ticket.Status = entity.TicketStatusRefunded

	result := Evaluate(ticket, fixtureEvent(200*time.Hour, now), policy, now)

	assert.False(t, result.IsEligible)
	assert.Equal(t, "This ticket has already been refunded.", result.Reason)
}

func TestEvaluateSetsDeadline(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	policy := &entity.RefundPolicy{
		IsRefundable:        true,
		RefundDeadlineHours: 48,
	}
	event := fixtureEvent(100*time.Hour, now)

	result := Evaluate(fixtureTicket(100000), event, policy, now)

	if assert.NotNil(t, result.Deadline) {
		assert.Equal(t, event.StartDate.Add(-48*time.Hour), *result.Deadline)
	}
}

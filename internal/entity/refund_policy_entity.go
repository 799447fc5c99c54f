package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RefundPolicy holds the per-event refund rules. Events without their own
// policy fall back to the platform default seeded at install time.
type RefundPolicy struct {
	ID      uuid.UUID
	EventID *uuid.UUID

	IsRefundable        bool
	RefundDeadlineHours int

	// Tiered windows, widest first. A nil tier means the policy does not
	// offer it.
	FullRefundDeadlineHours    *int
	PartialRefundDeadlineHours *int
	PartialRefundPercentage    *float64

	// BaseRefundPercentage covers the gap between the request deadline and
	// the narrowest configured tier. Policies without tiers and without a
	// base percentage refund nothing in that gap.
	BaseRefundPercentage *float64

	ProcessingFeePercentage float64
	PolicyText              string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks window ordering: full >= partial >= request deadline.
// The evaluator also walks tiers widest-first, so a misordered policy can
// never widen a refund, but writes should be rejected up front.
func (p *RefundPolicy) Validate() error {
	if p.RefundDeadlineHours < 0 {
		return fmt.Errorf("refund deadline hours must not be negative")
	}
	if p.ProcessingFeePercentage < 0 || p.ProcessingFeePercentage >= 1 {
		return fmt.Errorf("processing fee percentage must be in [0, 1)")
	}
	if p.PartialRefundPercentage != nil && (*p.PartialRefundPercentage <= 0 || *p.PartialRefundPercentage > 1) {
		return fmt.Errorf("partial refund percentage must be in (0, 1]")
	}
	if p.BaseRefundPercentage != nil && (*p.BaseRefundPercentage < 0 || *p.BaseRefundPercentage > 1) {
		return fmt.Errorf("base refund percentage must be in [0, 1]")
	}
	if p.PartialRefundDeadlineHours != nil && *p.PartialRefundDeadlineHours < p.RefundDeadlineHours {
		return fmt.Errorf("partial refund window must not be narrower than the request deadline")
	}
	if p.FullRefundDeadlineHours != nil {
		if *p.FullRefundDeadlineHours < p.RefundDeadlineHours {
			return fmt.Errorf("full refund window must not be narrower than the request deadline")
		}
		if p.PartialRefundDeadlineHours != nil && *p.FullRefundDeadlineHours < *p.PartialRefundDeadlineHours {
			return fmt.Errorf("full refund window must not be narrower than the partial window")
		}
	}
	if p.PartialRefundDeadlineHours != nil && p.PartialRefundPercentage == nil {
		return fmt.Errorf("partial refund window requires a partial percentage")
	}
	return nil
}

// RefundEligibilityResult is the outcome of evaluating a ticket against
// its event's policy at a given instant.
type RefundEligibilityResult struct {
	IsEligible       bool
	Reason           string
	RefundableAmount float64
	RefundPercentage float64
	ProcessingFee    float64
	NetRefund        float64
	Deadline         *time.Time
	Policy           *RefundPolicy
}

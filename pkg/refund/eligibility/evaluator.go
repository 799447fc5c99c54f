// Package eligibility computes whether a ticket still qualifies for a
// refund under its event's policy, and for how much. Evaluation is pure:
// the caller supplies the instant, the evaluator never reads the clock.
package eligibility

import (
	"fmt"
	"time"

	"eventpass-be/internal/entity"
)

// Evaluate applies the policy's time windows to the ticket at instant now.
//
// Window selection walks widest-first: full window, then partial window,
// then the policy's explicit base percentage. A policy that defines no
// percentage covering the current window yields an ineligible result
// rather than an implicit default.
func Evaluate(ticket *entity.Ticket, event *entity.Event, policy *entity.RefundPolicy, now time.Time) *entity.RefundEligibilityResult {
	result := &entity.RefundEligibilityResult{
		RefundableAmount: ticket.TicketType.Price,
		Policy:           policy,
	}

	if ticket.Status == entity.TicketStatusRefunded {
		result.Reason = "This ticket has already been refunded."
		return result
	}

	if !policy.IsRefundable {
		result.Reason = "This event is non-refundable."
		return result
	}

	deadline := event.StartDate.Add(-time.Duration(policy.RefundDeadlineHours) * time.Hour)
	result.Deadline = &deadline

	hoursUntilEvent := event.StartDate.Sub(now).Hours()
	if hoursUntilEvent < float64(policy.RefundDeadlineHours) {
		result.Reason = fmt.Sprintf(
			"Refund requests closed %d hours before the event starts.", policy.RefundDeadlineHours)
		return result
	}

	percentage, ok := selectPercentage(policy, hoursUntilEvent)
	if !ok {
		result.Reason = "No refund tier of this event's policy covers the current time window."
		return result
	}

	gross := result.RefundableAmount * percentage
	fee := gross * policy.ProcessingFeePercentage
	net := gross - fee
	if net < 0 {
		net = 0
	}

	result.IsEligible = true
	result.RefundPercentage = percentage
	result.ProcessingFee = fee
	result.NetRefund = net
	return result
}

func selectPercentage(policy *entity.RefundPolicy, hoursUntilEvent float64) (float64, bool) {
	if policy.FullRefundDeadlineHours != nil && hoursUntilEvent >= float64(*policy.FullRefundDeadlineHours) {
		return 1.0, true
	}
	if policy.PartialRefundDeadlineHours != nil && policy.PartialRefundPercentage != nil &&
		hoursUntilEvent >= float64(*policy.PartialRefundDeadlineHours) {
		return *policy.PartialRefundPercentage, true
	}
	if policy.FullRefundDeadlineHours == nil && policy.PartialRefundDeadlineHours == nil {
		// Untiered policy: the request deadline alone decides, full refund.
		return 1.0, true
	}
	if policy.BaseRefundPercentage != nil {
		return *policy.BaseRefundPercentage, true
	}
	return 0, false
}

// Package summary derives organizer dashboard figures from the current
// set of refund requests. Counts are recomputed on every read; there is
// deliberately no cached aggregate that could go stale behind a decision.
package summary

import (
	"context"
	"time"

	"eventpass-be/internal/entity"
	"eventpass-be/internal/pkg/logger"
	"eventpass-be/internal/repository/specification"
	"eventpass-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Summary is the read-side view of an organizer's refund workload.
type Summary struct {
	PendingCount       int
	ApprovedCount      int
	RejectedCount      int
	MonthlyRefundTotal float64
}

// Summarize folds the request set into dashboard counts as of the given
// instant. Approved and completed both count as approved; the monthly
// total sums the payable amount of approved/completed requests filed in
// asOf's calendar month.
func Summarize(requests []*entity.RefundRequest, asOf time.Time) Summary {
	var s Summary
	year, month, _ := asOf.Date()

	for _, req := range requests {
		switch req.Status {
		case entity.RefundStatusPending:
			s.PendingCount++
		case entity.RefundStatusApproved, entity.RefundStatusCompleted:
			s.ApprovedCount++
		case entity.RefundStatusRejected:
			s.RejectedCount++
		}

		if req.Status != entity.RefundStatusApproved && req.Status != entity.RefundStatusCompleted {
			continue
		}
		reqYear, reqMonth, _ := req.RequestedAt.In(asOf.Location()).Date()
		if reqYear == year && reqMonth == month {
			s.MonthlyRefundTotal += req.PayableAmount()
		}
	}
	return s
}

// Aggregator loads an organizer's requests and derives their summary.
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{logger: logger}
}

// GetSummary recomputes the dashboard counts for one organizer's events.
func (a *Aggregator) GetSummary(ctx context.Context, uow unitofwork.UnitOfWork, organizerId uuid.UUID, asOf time.Time) (*Summary, error) {
	requests, err := uow.RefundRequestRepository().FindAll(ctx,
		specification.ByOrganizerID{OrganizerID: organizerId},
	)
	if err != nil {
		return nil, err
	}

	s := Summarize(requests, asOf)
	return &s, nil
}

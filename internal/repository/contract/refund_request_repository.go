package contract

import (
	"context"

	"eventpass-be/internal/entity"
	"eventpass-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RefundRequestRepository interface {
	// Create persists the request together with its initial status-history
	// entry.
	Create(ctx context.Context, request *entity.RefundRequest) error

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RefundRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RefundRequest, error)

	// FindActiveByTicket returns the ticket's non-terminal request
	// (pending, approved or processing), or nil.
	FindActiveByTicket(ctx context.Context, ticketId uuid.UUID) (*entity.RefundRequest, error)

	// TransitionStatus applies a status change with a compare-and-swap on
	// the expected current status. When the guard misses (someone else
	// decided first) it fails with an invalid-state-transition error and
	// writes nothing.
	TransitionStatus(ctx context.Context, request *entity.RefundRequest, from entity.RefundStatus, change *entity.RefundStatusChange) error
}

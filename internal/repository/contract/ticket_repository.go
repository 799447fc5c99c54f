package contract

import (
	"context"

	"eventpass-be/internal/entity"
	"eventpass-be/internal/repository/specification"

	"github.com/google/uuid"
)

// TicketRepository is read-mostly: the ticket store belongs to the sales
// side, this service only flips status to refunded after a payout.
type TicketRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ticket, error)
	FindAllByHolder(ctx context.Context, holderId uuid.UUID) ([]*entity.Ticket, error)
	MarkRefunded(ctx context.Context, ticketId uuid.UUID) error
}

package unitofwork

import (
	"context"

	"eventpass-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	RefundRequestRepository() contract.RefundRequestRepository
	TicketRepository() contract.TicketRepository
	EventRepository() contract.EventRepository
	RefundPolicyRepository() contract.RefundPolicyRepository
}

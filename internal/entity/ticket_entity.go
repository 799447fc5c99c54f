package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus tracks a ticket's own state, independent of any refund
// request open against it.
type TicketStatus string

const (
	TicketStatusValid    TicketStatus = "valid"
	TicketStatusUsed     TicketStatus = "used"
	TicketStatusRefunded TicketStatus = "refunded"
)

type TicketType struct {
	ID      uuid.UUID
	EventID uuid.UUID
	Name    string
	Price   float64
}

type Ticket struct {
	ID           uuid.UUID
	TicketNumber string
	EventID      uuid.UUID
	TicketTypeID uuid.UUID

	HolderID    uuid.UUID
	HolderName  string
	HolderEmail string
	HolderPhone string

	Status      TicketStatus
	PurchasedAt time.Time

	TicketType TicketType

	CreatedAt time.Time
	UpdatedAt time.Time
}

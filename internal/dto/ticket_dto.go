package dto

import (
	"time"

	"github.com/google/uuid"
)

type TicketResponse struct {
	Id           uuid.UUID `json:"id"`
	TicketNumber string    `json:"ticket_number"`
	EventId      uuid.UUID `json:"event_id"`
	TypeName     string    `json:"type_name"`
	Price        float64   `json:"price"`
	Status       string    `json:"status"`
	PurchasedAt  time.Time `json:"purchased_at"`
}

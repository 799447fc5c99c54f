package entity

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID
	Title       string
	Venue       string
	StartDate   time.Time
	EndDate     time.Time
	OrganizerID uuid.UUID

	RefundPolicy *RefundPolicy

	CreatedAt time.Time
	UpdatedAt time.Time
}

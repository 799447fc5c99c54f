package contract

import (
	"context"

	"eventpass-be/internal/entity"

	"github.com/google/uuid"
)

type RefundPolicyRepository interface {
	// FindForEvent returns the event's own policy, falling back to the
	// platform default (event_id IS NULL) when the event has none.
	FindForEvent(ctx context.Context, eventId uuid.UUID) (*entity.RefundPolicy, error)
}

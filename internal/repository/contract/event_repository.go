package contract

import (
	"context"

	"eventpass-be/internal/entity"
	"eventpass-be/internal/repository/specification"
)

// EventRepository is read-only from the refund core's perspective.
type EventRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Event, error)
}

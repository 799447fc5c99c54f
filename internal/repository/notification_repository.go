package repository

import (
	"context"

	"eventpass-be/internal/model"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindAllByUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]model.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userId uuid.UUID) error
}

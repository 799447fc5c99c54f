package model

import (
	"time"

	"github.com/google/uuid"
)

// RefundStatusChange rows are append-only; nothing in the codebase
// updates or deletes them.
type RefundStatusChange struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	RequestID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus *string   `gorm:"type:varchar(20)"`
	ToStatus   string    `gorm:"type:varchar(20);not null"`
	Note       string    `gorm:"type:text"`
	ChangedAt  time.Time `gorm:"not null"`
}

func (RefundStatusChange) TableName() string {
	return "refund_status_changes"
}

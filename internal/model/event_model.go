package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Venue       string    `gorm:"type:varchar(255)"`
	StartDate   time.Time `gorm:"not null;index"`
	EndDate     time.Time
	OrganizerID uuid.UUID `gorm:"type:uuid;not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	RefundPolicy *RefundPolicy `gorm:"foreignKey:EventID"`
}

func (Event) TableName() string {
	return "events"
}

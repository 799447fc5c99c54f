package model

import (
	"time"

	"github.com/google/uuid"
)

type TicketType struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string    `gorm:"type:varchar(100);not null"`
	Price   float64   `gorm:"type:decimal(12,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TicketType) TableName() string {
	return "ticket_types"
}

type Ticket struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TicketNumber string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TicketTypeID uuid.UUID `gorm:"type:uuid;not null"`

	HolderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	HolderName  string    `gorm:"type:varchar(255)"`
	HolderEmail string    `gorm:"type:varchar(255)"`
	HolderPhone string    `gorm:"type:varchar(50)"`

	Status      string    `gorm:"type:varchar(20);not null;default:'valid'"`
	PurchasedAt time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	TicketType TicketType `gorm:"foreignKey:TicketTypeID"`
	Event      Event      `gorm:"foreignKey:EventID"`
}

func (Ticket) TableName() string {
	return "tickets"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type RefundRequest struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TicketID     uuid.UUID `gorm:"type:uuid;not null;index"`
	TicketNumber string    `gorm:"type:varchar(50);not null"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;index"`
	EventTitle   string    `gorm:"type:varchar(255);not null"`

	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserName  string    `gorm:"type:varchar(255)"`
	UserEmail string    `gorm:"type:varchar(255)"`
	UserPhone string    `gorm:"type:varchar(50)"`

	Reason   string `gorm:"type:varchar(50);not null"`
	UserNote string `gorm:"type:text"`

	RequestedAmount float64  `gorm:"type:decimal(12,2);not null"`
	ApprovedAmount  *float64 `gorm:"type:decimal(12,2)"`
	Status          string   `gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewerNote    string   `gorm:"type:text"`

	OriginalPurchaseDate time.Time `gorm:"not null"`
	RequestedAt          time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	StatusHistory []RefundStatusChange `gorm:"foreignKey:RequestID"`
	Event         Event                `gorm:"foreignKey:EventID"`
	Ticket        Ticket               `gorm:"foreignKey:TicketID"`
}

func (RefundRequest) TableName() string {
	return "refund_requests"
}

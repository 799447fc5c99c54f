package model

import (
	"time"

	"github.com/google/uuid"
)

type RefundPolicy struct {
	ID      uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	EventID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	IsRefundable        bool `gorm:"not null;default:true"`
	RefundDeadlineHours int  `gorm:"not null"`

	FullRefundDeadlineHours    *int
	PartialRefundDeadlineHours *int
	PartialRefundPercentage    *float64 `gorm:"type:decimal(5,4)"`
	BaseRefundPercentage       *float64 `gorm:"type:decimal(5,4)"`

	ProcessingFeePercentage float64 `gorm:"type:decimal(5,4);not null;default:0"`
	PolicyText              string  `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RefundPolicy) TableName() string {
	return "refund_policies"
}

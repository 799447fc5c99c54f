package implementation

import (
	"context"

	"eventpass-be/internal/entity"
	"eventpass-be/internal/model"
	"eventpass-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type refundPolicyRepositoryImpl struct {
	db *gorm.DB
}

func NewRefundPolicyRepository(db *gorm.DB) contract.RefundPolicyRepository {
	return &refundPolicyRepositoryImpl{db: db}
}

func (r *refundPolicyRepositoryImpl) FindForEvent(ctx context.Context, eventId uuid.UUID) (*entity.RefundPolicy, error) {
	var modelPolicy model.RefundPolicy

	err := r.db.WithContext(ctx).Where("event_id = ?", eventId).First(&modelPolicy).Error
	if err == gorm.ErrRecordNotFound {
		// Platform default
		err = r.db.WithContext(ctx).Where("event_id IS NULL").First(&modelPolicy).Error
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return mapPolicyToEntity(&modelPolicy), nil
}

func mapPolicyToEntity(mp *model.RefundPolicy) *entity.RefundPolicy {
	return &entity.RefundPolicy{
		ID:                         mp.ID,
		EventID:                    mp.EventID,
		IsRefundable:               mp.IsRefundable,
		RefundDeadlineHours:        mp.RefundDeadlineHours,
		FullRefundDeadlineHours:    mp.FullRefundDeadlineHours,
		PartialRefundDeadlineHours: mp.PartialRefundDeadlineHours,
		PartialRefundPercentage:    mp.PartialRefundPercentage,
		BaseRefundPercentage:       mp.BaseRefundPercentage,
		ProcessingFeePercentage:    mp.ProcessingFeePercentage,
		PolicyText:                 mp.PolicyText,
		CreatedAt:                  mp.CreatedAt,
		UpdatedAt:                  mp.UpdatedAt,
	}
}

package implementation

import (
	"context"

	"eventpass-be/internal/entity"
	"eventpass-be/internal/model"
	"eventpass-be/internal/repository/contract"
	"eventpass-be/internal/repository/specification"

	"gorm.io/gorm"
)

type eventRepositoryImpl struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) contract.EventRepository {
	return &eventRepositoryImpl{db: db}
}

func (r *eventRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Event, error) {
	var modelEvent model.Event
	query := r.db.WithContext(ctx).Preload("RefundPolicy")

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&modelEvent).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	event := &entity.Event{
		ID:          modelEvent.ID,
		Title:       modelEvent.Title,
		Venue:       modelEvent.Venue,
		StartDate:   modelEvent.StartDate,
		EndDate:     modelEvent.EndDate,
		OrganizerID: modelEvent.OrganizerID,
		CreatedAt:   modelEvent.CreatedAt,
		UpdatedAt:   modelEvent.UpdatedAt,
	}
	if modelEvent.RefundPolicy != nil {
		event.RefundPolicy = mapPolicyToEntity(modelEvent.RefundPolicy)
	}
	return event, nil
}

package implementation

import (
	"context"

	"eventpass-be/internal/entity"
	"eventpass-be/internal/model"
	"eventpass-be/internal/repository/contract"
	"eventpass-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ticketRepositoryImpl struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) contract.TicketRepository {
	return &ticketRepositoryImpl{db: db}
}

func (r *ticketRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ticket, error) {
	var modelTicket model.Ticket
	query := r.db.WithContext(ctx).Preload("TicketType")

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&modelTicket).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&modelTicket), nil
}

func (r *ticketRepositoryImpl) FindAllByHolder(ctx context.Context, holderId uuid.UUID) ([]*entity.Ticket, error) {
	var modelTickets []*model.Ticket
	err := r.db.WithContext(ctx).Preload("TicketType").
		Where("holder_id = ?", holderId).
		Order("purchased_at DESC").
		Find(&modelTickets).Error
	if err != nil {
		return nil, err
	}

	var tickets []*entity.Ticket
	for _, mt := range modelTickets {
		tickets = append(tickets, r.mapToEntity(mt))
	}
	return tickets, nil
}

func (r *ticketRepositoryImpl) MarkRefunded(ctx context.Context, ticketId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("id = ?", ticketId).
		Update("status", string(entity.TicketStatusRefunded)).Error
}

func (r *ticketRepositoryImpl) mapToEntity(mt *model.Ticket) *entity.Ticket {
	return &entity.Ticket{
		ID:           mt.ID,
		TicketNumber: mt.TicketNumber,
		EventID:      mt.EventID,
		TicketTypeID: mt.TicketTypeID,
		HolderID:     mt.HolderID,
		HolderName:   mt.HolderName,
		HolderEmail:  mt.HolderEmail,
		HolderPhone:  mt.HolderPhone,
		Status:       entity.TicketStatus(mt.Status),
		PurchasedAt:  mt.PurchasedAt,
		TicketType: entity.TicketType{
			ID:      mt.TicketType.ID,
			EventID: mt.TicketType.EventID,
			Name:    mt.TicketType.Name,
			Price:   mt.TicketType.Price,
		},
		CreatedAt: mt.CreatedAt,
		UpdatedAt: mt.UpdatedAt,
	}
}

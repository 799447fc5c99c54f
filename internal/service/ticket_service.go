package service

import (
	"context"

	"eventpass-be/internal/entity"
	"eventpass-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITicketService interface {
	GetMyTickets(ctx context.Context, holderId uuid.UUID) ([]*entity.Ticket, error)
}

type ticketService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTicketService(uowFactory unitofwork.RepositoryFactory) ITicketService {
	return &ticketService{uowFactory: uowFactory}
}

func (s *ticketService) GetMyTickets(ctx context.Context, holderId uuid.UUID) ([]*entity.Ticket, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.TicketRepository().FindAllByHolder(ctx, holderId)
}

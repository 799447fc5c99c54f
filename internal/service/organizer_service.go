package service

import (
	"context"
	"time"

	"eventpass-be/internal/dto"
	"eventpass-be/internal/entity"
	"eventpass-be/internal/repository/unitofwork"
	"eventpass-be/pkg/refund/decision"
	"eventpass-be/pkg/refund/summary"

	"github.com/google/uuid"
)

type IOrganizerService interface {
	GetRefundRequests(ctx context.Context, organizerId uuid.UUID, page, limit int, status string) ([]*entity.RefundRequest, error)
	ApproveRefund(ctx context.Context, organizerId, requestId uuid.UUID, req *dto.ApproveRefundRequest) (*entity.RefundRequest, error)
	RejectRefund(ctx context.Context, organizerId, requestId uuid.UUID, req *dto.RejectRefundRequest) (*entity.RefundRequest, error)
	GetSummary(ctx context.Context, organizerId uuid.UUID) (*summary.Summary, error)
}

// organizerService is a thin seam between the HTTP layer and the
// decision engine; the workflow rules live in pkg/refund/decision.
type organizerService struct {
	uowFactory unitofwork.RepositoryFactory
	processor  *decision.Processor
	aggregator *summary.Aggregator
	now        func() time.Time
}

func NewOrganizerService(
	uowFactory unitofwork.RepositoryFactory,
	processor *decision.Processor,
	aggregator *summary.Aggregator,
) IOrganizerService {
	return &organizerService{
		uowFactory: uowFactory,
		processor:  processor,
		aggregator: aggregator,
		now:        time.Now,
	}
}

func (s *organizerService) GetRefundRequests(ctx context.Context, organizerId uuid.UUID, page, limit int, status string) ([]*entity.RefundRequest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.processor.GetAll(ctx, uow, organizerId, page, limit, status)
}

func (s *organizerService) ApproveRefund(ctx context.Context, organizerId, requestId uuid.UUID, req *dto.ApproveRefundRequest) (*entity.RefundRequest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.processor.Approve(ctx, uow, organizerId, requestId, *req)
}

func (s *organizerService) RejectRefund(ctx context.Context, organizerId, requestId uuid.UUID, req *dto.RejectRefundRequest) (*entity.RefundRequest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.processor.Reject(ctx, uow, organizerId, requestId, *req)
}

func (s *organizerService) GetSummary(ctx context.Context, organizerId uuid.UUID) (*summary.Summary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.aggregator.GetSummary(ctx, uow, organizerId, s.now())
}

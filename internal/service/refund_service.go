package service

import (
	"context"
	"time"

	"eventpass-be/internal/dto"
	"eventpass-be/internal/entity"
	"eventpass-be/internal/pkg/apperror"
	"eventpass-be/internal/pkg/logger"
	"eventpass-be/internal/pkg/mailer"
	"eventpass-be/internal/repository/contract"
	"eventpass-be/internal/repository/specification"
	"eventpass-be/internal/repository/unitofwork"
	"eventpass-be/pkg/refund/eligibility"
	refundEvents "eventpass-be/pkg/refund/events"
	"eventpass-be/pkg/refund/lifecycle"

	"github.com/google/uuid"
)

type IRefundService interface {
	CheckEligibility(ctx context.Context, userId, ticketId uuid.UUID) (*entity.RefundEligibilityResult, error)
	SubmitRequest(ctx context.Context, userId uuid.UUID, req *dto.SubmitRefundRequest) (*entity.RefundRequest, error)
	GetMyRequests(ctx context.Context, userId uuid.UUID) ([]*entity.RefundRequest, error)
	GetRequest(ctx context.Context, userId, requestId uuid.UUID) (*entity.RefundRequest, error)
}

type refundService struct {
	uowFactory     unitofwork.RepositoryFactory
	policyRepo     contract.RefundPolicyRepository
	eventPublisher refundEvents.Publisher
	emailService   mailer.IEmailService
	logger         logger.ILogger
	now            func() time.Time
}

func NewRefundService(
	uowFactory unitofwork.RepositoryFactory,
	policyRepo contract.RefundPolicyRepository,
	eventPublisher refundEvents.Publisher,
	emailService mailer.IEmailService,
	logger logger.ILogger,
) IRefundService {
	return &refundService{
		uowFactory:     uowFactory,
		policyRepo:     policyRepo,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		logger:         logger,
		now:            time.Now,
	}
}

// CheckEligibility evaluates the ticket against its event's refund policy
// at the current instant. A ticket with an open (non-terminal) request is
// never eligible for a second one.
func (s *refundService) CheckEligibility(ctx context.Context, userId, ticketId uuid.UUID) (*entity.RefundEligibilityResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ticket, event, policy, err := s.loadEvaluationInputs(ctx, uow, userId, ticketId)
	if err != nil {
		return nil, err
	}

	active, err := uow.RefundRequestRepository().FindActiveByTicket(ctx, ticketId)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return &entity.RefundEligibilityResult{
			RefundableAmount: ticket.TicketType.Price,
			Reason:           "An active refund request already exists for this ticket.",
			Policy:           policy,
		}, nil
	}

	return eligibility.Evaluate(ticket, event, policy, s.now()), nil
}

// SubmitRequest files a refund request for an eligible ticket. The
// single-active-request rule is re-checked inside the transaction so two
// racing submissions cannot both land.
func (s *refundService) SubmitRequest(ctx context.Context, userId uuid.UUID, req *dto.SubmitRefundRequest) (*entity.RefundRequest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ticket, event, policy, err := s.loadEvaluationInputs(ctx, uow, userId, req.TicketId)
	if err != nil {
		return nil, err
	}

	result := eligibility.Evaluate(ticket, event, policy, s.now())
	if !result.IsEligible {
		return nil, apperror.NotEligible(result.Reason)
	}

	now := s.now()
	request := &entity.RefundRequest{
		ID:                   uuid.New(),
		TicketID:             ticket.ID,
		TicketNumber:         ticket.TicketNumber,
		EventID:              event.ID,
		EventTitle:           event.Title,
		UserID:               userId,
		UserName:             ticket.HolderName,
		UserEmail:            ticket.HolderEmail,
		UserPhone:            ticket.HolderPhone,
		Reason:               entity.RefundReason(req.Reason),
		UserNote:             req.UserNote,
		RequestedAmount:      result.NetRefund,
		OriginalPurchaseDate: ticket.PurchasedAt,
		RequestedAt:          now,
	}
	if err := lifecycle.Submit(request, now); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.ServiceUnavailable("could not start submission transaction", err)
	}
	defer uow.Rollback()

	active, err := uow.RefundRequestRepository().FindActiveByTicket(ctx, req.TicketId)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperror.NotEligible("An active refund request already exists for this ticket.")
	}

	if err := uow.RefundRequestRepository().Create(ctx, request); err != nil {
		return nil, apperror.ServiceUnavailable("could not store refund request", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.ServiceUnavailable("could not commit refund request", err)
	}

	s.logger.Info("REFUND", "Refund request submitted", map[string]interface{}{
		"requestId": request.ID.String(),
		"ticketId":  ticket.ID.String(),
		"amount":    request.RequestedAmount,
		"reason":    req.Reason,
	})

	s.eventPublisher.PublishRefundRequested(ctx, request.ID, ticket.ID, userId, request.RequestedAmount, req.Reason)

	// Receipt email is best-effort; a mailer outage must not fail the
	// submission.
	go func() {
		if err := s.emailService.SendRefundReceipt(ticket.HolderEmail, event.Title, request.RequestedAmount); err != nil {
			s.logger.Warn("REFUND", "Failed to send refund receipt", map[string]interface{}{
				"requestId": request.ID.String(),
				"error":     err.Error(),
			})
		}
	}()

	return request, nil
}

func (s *refundService) GetMyRequests(ctx context.Context, userId uuid.UUID) ([]*entity.RefundRequest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.RefundRequestRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "requested_at", Desc: true},
	)
}

func (s *refundService) GetRequest(ctx context.Context, userId, requestId uuid.UUID) (*entity.RefundRequest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	request, err := uow.RefundRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil || request.UserID != userId {
		return nil, apperror.NotFound("refund request not found")
	}
	return request, nil
}

func (s *refundService) loadEvaluationInputs(ctx context.Context, uow unitofwork.UnitOfWork, userId, ticketId uuid.UUID) (*entity.Ticket, *entity.Event, *entity.RefundPolicy, error) {
	ticket, err := uow.TicketRepository().FindOne(ctx, specification.ByID{ID: ticketId})
	if err != nil {
		return nil, nil, nil, err
	}
	if ticket == nil || ticket.HolderID != userId {
		return nil, nil, nil, apperror.NotFound("ticket not found")
	}

	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: ticket.EventID})
	if err != nil {
		return nil, nil, nil, err
	}
	if event == nil {
		return nil, nil, nil, apperror.NotFound("event not found")
	}

	policy, err := s.policyRepo.FindForEvent(ctx, event.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	if policy == nil {
		return nil, nil, nil, apperror.NotFound("no refund policy configured for this event")
	}

	return ticket, event, policy, nil
}

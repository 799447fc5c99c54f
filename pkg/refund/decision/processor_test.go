package decision

import (
	"context"
	"sync"
	"testing"
	"time"

	"eventpass-be/internal/dto"
	"eventpass-be/internal/entity"
	"eventpass-be/internal/pkg/apperror"
	"eventpass-be/internal/repository/contract"
	"eventpass-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// --- in-memory fakes ---

type fakeRefundRequestRepo struct {
	mu       sync.Mutex
	requests map[uuid.UUID]*entity.RefundRequest
}

func (r *fakeRefundRequestRepo) Create(ctx context.Context, request *entity.RefundRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *fakeRefundRequestRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RefundRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			if req, found := r.requests[byID.ID]; found {
				clone := *req
				return &clone, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeRefundRequestRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RefundRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.RefundRequest
	for _, req := range r.requests {
		clone := *req
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeRefundRequestRepo) FindActiveByTicket(ctx context.Context, ticketId uuid.UUID) (*entity.RefundRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if req.TicketID != ticketId {
			continue
		}
		switch req.Status {
		case entity.RefundStatusPending, entity.RefundStatusApproved, entity.RefundStatusProcessing:
			clone := *req
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeRefundRequestRepo) TransitionStatus(ctx context.Context, request *entity.RefundRequest, from entity.RefundStatus, change *entity.RefundStatusChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, found := r.requests[request.ID]
	if !found || stored.Status != from {
		return apperror.InvalidStateTransition("refund request has already been decided")
	}
	stored.Status = change.ToStatus
	stored.ApprovedAmount = request.ApprovedAmount
	stored.ReviewerNote = request.ReviewerNote
	stored.StatusHistory = append(stored.StatusHistory, *change)
	return nil
}

type fakeEventRepo struct {
	events map[uuid.UUID]*entity.Event
}

func (r *fakeEventRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Event, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			return r.events[byID.ID], nil
		}
	}
	return nil, nil
}

type fakeUnitOfWork struct {
	requests *fakeRefundRequestRepo
	events   *fakeEventRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) RefundRequestRepository() contract.RefundRequestRepository { return u.requests }
func (u *fakeUnitOfWork) EventRepository() contract.EventRepository                 { return u.events }
func (u *fakeUnitOfWork) TicketRepository() contract.TicketRepository               { return nil }
func (u *fakeUnitOfWork) RefundPolicyRepository() contract.RefundPolicyRepository   { return nil }

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type recordingPublisher struct {
	approved []uuid.UUID
	rejected []uuid.UUID
}

func (p *recordingPublisher) PublishRefundRequested(ctx context.Context, requestId, ticketId, userId uuid.UUID, amount float64, reason string) {
}
func (p *recordingPublisher) PublishRefundApproved(ctx context.Context, requestId, ticketId, userId uuid.UUID, amount float64, reason string) {
	p.approved = append(p.approved, requestId)
}
func (p *recordingPublisher) PublishRefundRejected(ctx context.Context, requestId, ticketId, userId uuid.UUID, reviewerNote string) {
	p.rejected = append(p.rejected, requestId)
}
func (p *recordingPublisher) PublishPayoutStarted(ctx context.Context, requestId uuid.UUID, amount float64) {
}
func (p *recordingPublisher) PublishPayoutCompleted(ctx context.Context, requestId, ticketId, userId uuid.UUID, amount float64) {
}

type recordingQueue struct {
	enqueued []uuid.UUID
}

func (q *recordingQueue) EnqueuePayout(ctx context.Context, requestId uuid.UUID) error {
	q.enqueued = append(q.enqueued, requestId)
	return nil
}

// --- fixtures ---

type harness struct {
	uow         *fakeUnitOfWork
	processor   *Processor
	publisher   *recordingPublisher
	queue       *recordingQueue
	organizerId uuid.UUID
	request     *entity.RefundRequest
}

func newHarness(t *testing.T, requestedAmount float64) *harness {
	t.Helper()

	organizerId := uuid.New()
	eventId := uuid.New()
	requestId := uuid.New()

	pending := entity.RefundStatusPending
	request := &entity.RefundRequest{
		ID:              requestId,
		TicketID:        uuid.New(),
		EventID:         eventId,
		UserID:          uuid.New(),
		Status:          pending,
		RequestedAmount: requestedAmount,
		RequestedAt:     time.Now(),
	}

	uow := &fakeUnitOfWork{
		requests: &fakeRefundRequestRepo{requests: map[uuid.UUID]*entity.RefundRequest{
			requestId: request,
		}},
		events: &fakeEventRepo{events: map[uuid.UUID]*entity.Event{
			eventId: {ID: eventId, OrganizerID: organizerId, Title: "Kampala Jazz Night"},
		}},
	}

	publisher := &recordingPublisher{}
	queue := &recordingQueue{}

	return &harness{
		uow:         uow,
		processor:   NewProcessor(nopLogger{}, publisher, queue),
		publisher:   publisher,
		queue:       queue,
		organizerId: organizerId,
		request:     request,
	}
}

// --- tests ---

func TestApproveFullAmount(t *testing.T) {
	h := newHarness(t, 50000)

	decided, err := h.processor.Approve(context.Background(), h.uow, h.organizerId, h.request.ID, dto.ApproveRefundRequest{})

	assert.NoError(t, err)
	assert.Equal(t, entity.RefundStatusApproved, decided.Status)
	if assert.NotNil(t, decided.ApprovedAmount) {
		assert.Equal(t, 50000.0, *decided.ApprovedAmount)
	}
	assert.Equal(t, []uuid.UUID{h.request.ID}, h.publisher.approved)
	assert.Equal(t, []uuid.UUID{h.request.ID}, h.queue.enqueued)

	stored, _ := h.uow.requests.FindOne(context.Background(), specification.ByID{ID: h.request.ID})
	assert.Equal(t, entity.RefundStatusApproved, stored.Status)
}

func TestApprovePartialAmount(t *testing.T) {
	h := newHarness(t, 50000)
	amount := 40000.0

	decided, err := h.processor.Approve(context.Background(), h.uow, h.organizerId, h.request.ID, dto.ApproveRefundRequest{
		ApprovedAmount: &amount,
		ReviewerNote:   "Late change of plans, partial refund per policy",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.RefundStatusApproved, decided.Status)
	if assert.NotNil(t, decided.ApprovedAmount) {
		assert.Equal(t, 40000.0, *decided.ApprovedAmount)
	}
	assert.Equal(t, 40000.0, decided.PayableAmount())
}

func TestApproveRejectsExcessiveAmount(t *testing.T) {
	h := newHarness(t, 50000)
	amount := 60000.0

	_, err := h.processor.Approve(context.Background(), h.uow, h.organizerId, h.request.ID, dto.ApproveRefundRequest{
		ApprovedAmount: &amount,
	})

	assert.Error(t, err)
	assert.Equal(t, apperror.KindInvalidAmount, apperror.KindOf(err))
	assert.Empty(t, h.queue.enqueued)

	// The request must be untouched.
	stored, _ := h.uow.requests.FindOne(context.Background(), specification.ByID{ID: h.request.ID})
	assert.Equal(t, entity.RefundStatusPending, stored.Status)
	assert.Nil(t, stored.ApprovedAmount)
}

func TestRejectRequiresNote(t *testing.T) {
	h := newHarness(t, 50000)

	_, err := h.processor.Reject(context.Background(), h.uow, h.organizerId, h.request.ID, dto.RejectRefundRequest{})

	assert.Error(t, err)
	stored, _ := h.uow.requests.FindOne(context.Background(), specification.ByID{ID: h.request.ID})
	assert.Equal(t, entity.RefundStatusPending, stored.Status)
}

func TestDoubleDecisionFails(t *testing.T) {
	h := newHarness(t, 50000)

	_, err := h.processor.Reject(context.Background(), h.uow, h.organizerId, h.request.ID, dto.RejectRefundRequest{
		ReviewerNote: "Event is sold out, no refunds this close to the date",
	})
	assert.NoError(t, err)

	_, err = h.processor.Reject(context.Background(), h.uow, h.organizerId, h.request.ID, dto.RejectRefundRequest{
		ReviewerNote: "second attempt",
	})
	assert.Error(t, err)
	assert.Equal(t, apperror.KindInvalidStateTransition, apperror.KindOf(err))

	stored, _ := h.uow.requests.FindOne(context.Background(), specification.ByID{ID: h.request.ID})
	assert.Len(t, stored.StatusHistory, 1)
	assert.Equal(t, []uuid.UUID{h.request.ID}, h.publisher.rejected)
}

func TestApproveAfterRejectFails(t *testing.T) {
	h := newHarness(t, 50000)

	_, err := h.processor.Reject(context.Background(), h.uow, h.organizerId, h.request.ID, dto.RejectRefundRequest{
		ReviewerNote: "Outside the refund window",
	})
	assert.NoError(t, err)

	_, err = h.processor.Approve(context.Background(), h.uow, h.organizerId, h.request.ID, dto.ApproveRefundRequest{})
	assert.Error(t, err)
	assert.Equal(t, apperror.KindInvalidStateTransition, apperror.KindOf(err))
	assert.Empty(t, h.queue.enqueued)
}

func TestDecisionOnForeignEventIsNotFound(t *testing.T) {
	h := newHarness(t, 50000)
	stranger := uuid.New()

	_, err := h.processor.Approve(context.Background(), h.uow, stranger, h.request.ID, dto.ApproveRefundRequest{})

	assert.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestConcurrentDecidersExactlyOneWins(t *testing.T) {
	h := newHarness(t, 50000)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = h.processor.Approve(context.Background(), h.uow, h.organizerId, h.request.ID, dto.ApproveRefundRequest{})
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = h.processor.Approve(context.Background(), h.uow, h.organizerId, h.request.ID, dto.ApproveRefundRequest{})
	}()
	wg.Wait()

	var failures int
	for _, err := range errs {
		if err != nil {
			assert.Equal(t, apperror.KindInvalidStateTransition, apperror.KindOf(err))
			failures++
		}
	}
	assert.Equal(t, 1, failures)

	stored, _ := h.uow.requests.FindOne(context.Background(), specification.ByID{ID: h.request.ID})
	assert.Equal(t, entity.RefundStatusApproved, stored.Status)
	assert.Len(t, stored.StatusHistory, 1)
}

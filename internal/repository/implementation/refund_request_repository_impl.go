package implementation

import (
	"context"

	"eventpass-be/internal/entity"
	"eventpass-be/internal/model"
	"eventpass-be/internal/pkg/apperror"
	"eventpass-be/internal/repository/contract"
	"eventpass-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type refundRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewRefundRequestRepository(db *gorm.DB) contract.RefundRequestRepository {
	return &refundRequestRepositoryImpl{db: db}
}

func (r *refundRequestRepositoryImpl) Create(ctx context.Context, request *entity.RefundRequest) error {
	modelRequest := r.mapToModel(request)
	for _, change := range request.StatusHistory {
		modelRequest.StatusHistory = append(modelRequest.StatusHistory, mapChangeToModel(&change))
	}
	return r.db.WithContext(ctx).Create(modelRequest).Error
}

func (r *refundRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RefundRequest, error) {
	var modelRequest model.RefundRequest
	query := r.db.WithContext(ctx).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at ASC")
		})

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&modelRequest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&modelRequest), nil
}

func (r *refundRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RefundRequest, error) {
	var modelRequests []*model.RefundRequest
	query := r.db.WithContext(ctx).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at ASC")
		})

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&modelRequests).Error; err != nil {
		return nil, err
	}

	var requests []*entity.RefundRequest
	for _, mr := range modelRequests {
		requests = append(requests, r.mapToEntity(mr))
	}

	return requests, nil
}

func (r *refundRequestRepositoryImpl) FindActiveByTicket(ctx context.Context, ticketId uuid.UUID) (*entity.RefundRequest, error) {
	return r.FindOne(ctx,
		specification.ByTicketID{TicketID: ticketId},
		specification.ByStatusIn{Statuses: []string{
			string(entity.RefundStatusPending),
			string(entity.RefundStatusApproved),
			string(entity.RefundStatusProcessing),
		}},
	)
}

// TransitionStatus is the write side of the state machine. The UPDATE is
// guarded on the expected current status so concurrent deciders resolve
// to exactly one winner; the loser sees zero rows affected.
func (r *refundRequestRepositoryImpl) TransitionStatus(ctx context.Context, request *entity.RefundRequest, from entity.RefundStatus, change *entity.RefundStatusChange) error {
	res := r.db.WithContext(ctx).Model(&model.RefundRequest{}).
		Where("id = ? AND status = ?", request.ID, string(from)).
		Updates(map[string]interface{}{
			"status":          string(request.Status),
			"approved_amount": request.ApprovedAmount,
			"reviewer_note":   request.ReviewerNote,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.InvalidStateTransition("refund request is no longer in status " + string(from))
	}

	modelChange := mapChangeToModel(change)
	return r.db.WithContext(ctx).Create(&modelChange).Error
}

func (r *refundRequestRepositoryImpl) mapToModel(req *entity.RefundRequest) *model.RefundRequest {
	return &model.RefundRequest{
		ID:                   req.ID,
		TicketID:             req.TicketID,
		TicketNumber:         req.TicketNumber,
		EventID:              req.EventID,
		EventTitle:           req.EventTitle,
		UserID:               req.UserID,
		UserName:             req.UserName,
		UserEmail:            req.UserEmail,
		UserPhone:            req.UserPhone,
		Reason:               string(req.Reason),
		UserNote:             req.UserNote,
		RequestedAmount:      req.RequestedAmount,
		ApprovedAmount:       req.ApprovedAmount,
		Status:               string(req.Status),
		ReviewerNote:         req.ReviewerNote,
		OriginalPurchaseDate: req.OriginalPurchaseDate,
		RequestedAt:          req.RequestedAt,
	}
}

func (r *refundRequestRepositoryImpl) mapToEntity(mr *model.RefundRequest) *entity.RefundRequest {
	req := &entity.RefundRequest{
		ID:                   mr.ID,
		TicketID:             mr.TicketID,
		TicketNumber:         mr.TicketNumber,
		EventID:              mr.EventID,
		EventTitle:           mr.EventTitle,
		UserID:               mr.UserID,
		UserName:             mr.UserName,
		UserEmail:            mr.UserEmail,
		UserPhone:            mr.UserPhone,
		Reason:               entity.RefundReason(mr.Reason),
		UserNote:             mr.UserNote,
		RequestedAmount:      mr.RequestedAmount,
		ApprovedAmount:       mr.ApprovedAmount,
		Status:               entity.RefundStatus(mr.Status),
		ReviewerNote:         mr.ReviewerNote,
		OriginalPurchaseDate: mr.OriginalPurchaseDate,
		RequestedAt:          mr.RequestedAt,
		CreatedAt:            mr.CreatedAt,
		UpdatedAt:            mr.UpdatedAt,
	}
	for _, mc := range mr.StatusHistory {
		req.StatusHistory = append(req.StatusHistory, mapChangeToEntity(&mc))
	}
	return req
}

func mapChangeToModel(change *entity.RefundStatusChange) model.RefundStatusChange {
	mc := model.RefundStatusChange{
		ID:        change.ID,
		RequestID: change.RequestID,
		ToStatus:  string(change.ToStatus),
		Note:      change.Note,
		ChangedAt: change.ChangedAt,
	}
	if change.FromStatus != nil {
		from := string(*change.FromStatus)
		mc.FromStatus = &from
	}
	return mc
}

func mapChangeToEntity(mc *model.RefundStatusChange) entity.RefundStatusChange {
	change := entity.RefundStatusChange{
		ID:        mc.ID,
		RequestID: mc.RequestID,
		ToStatus:  entity.RefundStatus(mc.ToStatus),
		Note:      mc.Note,
		ChangedAt: mc.ChangedAt,
	}
	if mc.FromStatus != nil {
		from := entity.RefundStatus(*mc.FromStatus)
		change.FromStatus = &from
	}
	return change
}

package mapper

import (
	"eventpass-be/internal/dto"
	"eventpass-be/internal/entity"
)

func ToRefundRequestResponse(req *entity.RefundRequest) *dto.RefundRequestResponse {
	res := &dto.RefundRequestResponse{
		Id:              req.ID,
		TicketNumber:    req.TicketNumber,
		EventTitle:      req.EventTitle,
		Reason:          string(req.Reason),
		UserNote:        req.UserNote,
		RequestedAmount: req.RequestedAmount,
		ApprovedAmount:  req.ApprovedAmount,
		Status:          string(req.Status),
		ReviewerNote:    req.ReviewerNote,
		RequestedAt:     req.RequestedAt,
	}
	for _, change := range req.StatusHistory {
		res.StatusHistory = append(res.StatusHistory, toStatusChangeResponse(change))
	}
	return res
}

func toStatusChangeResponse(change entity.RefundStatusChange) dto.StatusChangeResponse {
	res := dto.StatusChangeResponse{
		ToStatus:  string(change.ToStatus),
		Note:      change.Note,
		ChangedAt: change.ChangedAt,
	}
	if change.FromStatus != nil {
		from := string(*change.FromStatus)
		res.FromStatus = &from
	}
	return res
}

func ToOrganizerRefundListResponse(req *entity.RefundRequest) *dto.OrganizerRefundListResponse {
	return &dto.OrganizerRefundListResponse{
		Id: req.ID,
		Requester: dto.RefundRequesterInfo{
			Id:    req.UserID,
			Name:  req.UserName,
			Email: req.UserEmail,
			Phone: req.UserPhone,
		},
		TicketNumber:    req.TicketNumber,
		EventTitle:      req.EventTitle,
		Reason:          string(req.Reason),
		UserNote:        req.UserNote,
		RequestedAmount: req.RequestedAmount,
		ApprovedAmount:  req.ApprovedAmount,
		Status:          string(req.Status),
		RequestedAt:     req.RequestedAt,
	}
}

func ToEligibilityResponse(result *entity.RefundEligibilityResult) *dto.EligibilityResponse {
	res := &dto.EligibilityResponse{
		IsEligible:       result.IsEligible,
		Reason:           result.Reason,
		RefundableAmount: result.RefundableAmount,
		RefundPercentage: result.RefundPercentage,
		ProcessingFee:    result.ProcessingFee,
		NetRefund:        result.NetRefund,
		Deadline:         result.Deadline,
	}
	if result.Policy != nil {
		res.PolicyText = result.Policy.PolicyText
	}
	return res
}

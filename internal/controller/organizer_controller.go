package controller

import (
	"time"

	"eventpass-be/internal/dto"
	"eventpass-be/internal/mapper"
	"eventpass-be/internal/pkg/serverutils"
	"eventpass-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOrganizerController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
	Summary(ctx *fiber.Ctx) error
}

type organizerController struct {
	organizerService service.IOrganizerService
}

func NewOrganizerController(organizerService service.IOrganizerService) IOrganizerController {
	return &organizerController{
		organizerService: organizerService,
	}
}

func (c *organizerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/organizer/refunds")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireOrganizer)
	h.Get("summary", c.Summary)
	h.Get("", c.Index)
	h.Post(":id/approve", c.Approve)
	h.Post(":id/reject", c.Reject)
}

func (c *organizerController) Index(ctx *fiber.Ctx) error {
	organizerIdStr := ctx.Locals("user_id").(string)
	organizerId, _ := uuid.Parse(organizerIdStr)

	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)
	status := ctx.Query("status", "")

	requests, err := c.organizerService.GetRefundRequests(ctx.Context(), organizerId, page, limit, status)
	if err != nil {
		return err
	}

	res := make([]*dto.OrganizerRefundListResponse, 0, len(requests))
	for _, request := range requests {
		res = append(res, mapper.ToOrganizerRefundListResponse(request))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list refund requests", res))
}

func (c *organizerController) Approve(ctx *fiber.Ctx) error {
	organizerIdStr := ctx.Locals("user_id").(string)
	organizerId, _ := uuid.Parse(organizerIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid refund request id")
	}

	var req dto.ApproveRefundRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	request, err := c.organizerService.ApproveRefund(ctx.Context(), organizerId, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success approve refund request", dto.DecisionResponse{
		RequestId:      request.ID,
		Status:         string(request.Status),
		ApprovedAmount: request.ApprovedAmount,
		DecidedAt:      time.Now(),
	}))
}

func (c *organizerController) Reject(ctx *fiber.Ctx) error {
	organizerIdStr := ctx.Locals("user_id").(string)
	organizerId, _ := uuid.Parse(organizerIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid refund request id")
	}

	var req dto.RejectRefundRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	request, err := c.organizerService.RejectRefund(ctx.Context(), organizerId, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reject refund request", dto.DecisionResponse{
		RequestId: request.ID,
		Status:    string(request.Status),
		DecidedAt: time.Now(),
	}))
}

func (c *organizerController) Summary(ctx *fiber.Ctx) error {
	organizerIdStr := ctx.Locals("user_id").(string)
	organizerId, _ := uuid.Parse(organizerIdStr)

	s, err := c.organizerService.GetSummary(ctx.Context(), organizerId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get refund summary", dto.RefundSummaryResponse{
		PendingCount:       s.PendingCount,
		ApprovedCount:      s.ApprovedCount,
		RejectedCount:      s.RejectedCount,
		MonthlyRefundTotal: s.MonthlyRefundTotal,
	}))
}

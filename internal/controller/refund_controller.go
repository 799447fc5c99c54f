package controller

import (
	"eventpass-be/internal/dto"
	"eventpass-be/internal/mapper"
	"eventpass-be/internal/pkg/serverutils"
	"eventpass-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRefundController interface {
	RegisterRoutes(r fiber.Router)
	CheckEligibility(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type refundController struct {
	refundService service.IRefundService
}

func NewRefundController(refundService service.IRefundService) IRefundController {
	return &refundController{
		refundService: refundService,
	}
}

func (c *refundController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/refunds")
	h.Use(serverutils.JwtMiddleware)
	h.Post("eligibility", c.CheckEligibility)
	h.Post("", c.Submit)
	h.Get("", c.Index)
	h.Get(":id", c.Show)
}

func (c *refundController) CheckEligibility(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.EligibilityCheckRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result, err := c.refundService.CheckEligibility(ctx.Context(), userId, req.TicketId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success check refund eligibility", mapper.ToEligibilityResponse(result)))
}

func (c *refundController) Submit(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SubmitRefundRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	request, err := c.refundService.SubmitRequest(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success submit refund request", mapper.ToRefundRequestResponse(request)))
}

func (c *refundController) Index(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	requests, err := c.refundService.GetMyRequests(ctx.Context(), userId)
	if err != nil {
		return err
	}

	res := make([]*dto.RefundRequestResponse, 0, len(requests))
	for _, request := range requests {
		res = append(res, mapper.ToRefundRequestResponse(request))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list refund requests", res))
}

func (c *refundController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid refund request id")
	}

	request, err := c.refundService.GetRequest(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show refund request", mapper.ToRefundRequestResponse(request)))
}

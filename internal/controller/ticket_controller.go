package controller

import (
	"eventpass-be/internal/dto"
	"eventpass-be/internal/pkg/serverutils"
	"eventpass-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITicketController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
}

type ticketController struct {
	ticketService service.ITicketService
}

func NewTicketController(ticketService service.ITicketService) ITicketController {
	return &ticketController{
		ticketService: ticketService,
	}
}

func (c *ticketController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tickets")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Index)
}

func (c *ticketController) Index(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	tickets, err := c.ticketService.GetMyTickets(ctx.Context(), userId)
	if err != nil {
		return err
	}

	res := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		res = append(res, dto.TicketResponse{
			Id:           t.ID,
			TicketNumber: t.TicketNumber,
			EventId:      t.EventID,
			TypeName:     t.TicketType.Name,
			Price:        t.TicketType.Price,
			Status:       string(t.Status),
			PurchasedAt:  t.PurchasedAt,
		})
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list tickets", res))
}

package controller

import (
	"strconv"

	"anon-board-be/internal/apperrors"
	"anon-board-be/internal/dto"
	"anon-board-be/internal/pkg/serverutils"
	"anon-board-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBoardController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	Edit(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type boardController struct {
	messageService service.IMessageService
	healthService  service.IHealthService
}

func NewBoardController(messageService service.IMessageService, healthService service.IHealthService) IBoardController {
	return &boardController{
		messageService: messageService,
		healthService:  healthService,
	}
}

// Routes sit at the root: the board serves its own page alongside the
// JSON endpoints the page's scripts call.
func (c *boardController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
	r.Post("/submit", c.Submit)
	r.Put("/edit/:id", c.Edit)
	r.Delete("/delete/:id", c.Delete)
	r.Get("/health", c.Health)
}

func (c *boardController) Index(ctx *fiber.Ctx) error {
	ownerId := serverutils.CurrentOwnerId(ctx)

	view := c.messageService.Board(ctx.Context(), ownerId)

	return ctx.Render("index", fiber.Map{
		"Messages": view.Messages,
		"UserId":   view.UserId,
		"DBError":  view.DBError,
	})
}

func (c *boardController) Submit(ctx *fiber.Ctx) error {
	ownerId := serverutils.CurrentOwnerId(ctx)

	var req dto.CreateMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Message cannot be empty")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.messageService.Create(ctx.Context(), ownerId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *boardController) Edit(ctx *fiber.Ctx) error {
	ownerId := serverutils.CurrentOwnerId(ctx)

	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewNotFound("Message not found")
	}

	var req dto.UpdateMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Message cannot be empty")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.messageService.Update(ctx.Context(), ownerId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *boardController) Delete(ctx *fiber.Ctx) error {
	ownerId := serverutils.CurrentOwnerId(ctx)

	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewNotFound("Message not found")
	}

	if err := c.messageService.Delete(ctx.Context(), ownerId, id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"success": true})
}

func (c *boardController) Health(ctx *fiber.Ctx) error {
	res := c.healthService.Check(ctx.Context())
	if res.Status != "healthy" {
		return ctx.Status(fiber.StatusInternalServerError).JSON(res)
	}
	return ctx.JSON(res)
}

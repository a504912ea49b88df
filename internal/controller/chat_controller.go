package controller

import (
	"chat-space-be/internal/dto"
	"chat-space-be/internal/pkg/serverutils"
	"chat-space-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	ListChats(ctx *fiber.Ctx) error
	CreateChat(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chats", serverutils.JwtMiddleware)
	h.Get("/", c.ListChats)
	h.Post("/", c.CreateChat)
}

func (c *chatController) ListChats(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid session"))
	}

	res, err := c.service.ListChats(ctx.Context(), userId)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Chats retrieved", res))
}

func (c *chatController) CreateChat(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid session"))
	}

	var req dto.CreateChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.CreateChat(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Chat created", res))
}

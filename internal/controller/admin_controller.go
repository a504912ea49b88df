package controller

import (
	"strconv"

	"chat-space-be/internal/dto"
	"chat-space-be/internal/pkg/serverutils"
	"chat-space-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetAllUsers(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
	UpdateUserRole(ctx *fiber.Ctx) error
	DeleteUser(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	service     service.IAdminService
	authService service.IAuthService
}

func NewAdminController(service service.IAdminService, authService service.IAuthService) IAdminController {
	return &adminController{
		service:     service,
		authService: authService,
	}
}

// requireAdmin checks the caller's role against the profile row on every
// request. The token claim only identifies the caller; the stored role
// decides, so demotions and deletions cut access without waiting for the
// token to expire.
func (c *adminController) requireAdmin(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid session"))
	}
	if err := c.authService.RequireAdmin(ctx.Context(), userId); err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.Next()
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", serverutils.JwtMiddleware, c.requireAdmin)
	h.Get("/users", c.GetAllUsers)
	h.Get("/stats", c.GetStats)
	h.Put("/users/:id/role", c.UpdateUserRole)
	h.Delete("/users/:id", c.DeleteUser)
	h.Get("/logs", c.GetLogs)
}

func (c *adminController) GetAllUsers(ctx *fiber.Ctx) error {
	res, err := c.service.GetAllUsers(ctx.Context())
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Users retrieved", res))
}

func (c *adminController) GetStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetStats(ctx.Context())
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Stats retrieved", res))
}

func (c *adminController) UpdateUserRole(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user id"))
	}

	var req dto.UpdateRoleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.service.UpdateUserRole(ctx.Context(), userId, req.Role); err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Role updated", nil))
}

func (c *adminController) DeleteUser(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user id"))
	}

	// Admins cannot delete their own account from the roster.
	if self, selfErr := currentUserId(ctx); selfErr == nil && self == userId {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Cannot delete your own account"))
	}

	if err := c.service.DeleteUser(ctx.Context(), userId); err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User deleted", nil))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	res, err := c.service.GetSystemLogs(ctx.Context(), level, limit, offset)
	if err != nil {
		return mapServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs retrieved", res))
}

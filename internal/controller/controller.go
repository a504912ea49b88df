package controller

import (
	"errors"

	"chat-space-be/internal/pkg/serverutils"
	"chat-space-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// mapServiceError translates the service sentinels into HTTP statuses; any
// unrecognized error surfaces as a 500.
func mapServiceError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	case errors.Is(err, service.ErrForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Forbidden"))
	case errors.Is(err, service.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Not found"))
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
}

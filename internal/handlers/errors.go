package handlers

import (
	"errors"

	"gudang/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusFromError maps the service error kinds onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrInsufficientStock):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// actorID returns the authenticated administrator's ID placed in the
// request context by the JWT middleware.
func actorID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}

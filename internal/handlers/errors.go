package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
	"interview-coach/internal/services"
)

// respondError maps the two expected failure shapes to their status codes;
// everything else becomes a generic 500 so internals never leak to clients.
func respondError(c *fiber.Ctx, err error, notFoundMessage string) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})
	}

	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Message: notFoundMessage,
		})
	}

	log.Printf("❌ %s %s failed: %v\n", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Message: "internal server error",
	})
}

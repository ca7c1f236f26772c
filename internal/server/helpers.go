package server

import (
	"haven/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// respondFieldErrors writes a 400 with per-field validation detail, matching
// the shape the front-end expects for rejected submissions.
func respondFieldErrors(c *fiber.Ctx, message string, errs validation.FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  message,
		"code":   "VALIDATION_ERROR",
		"errors": errs,
	})
}

package server

import (
	"errors"
	"strings"

	"haven/internal/models"
	"haven/internal/store"
	"haven/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetQuotes handles GET /api/quotes. Only approved quotes appear on the
// public wall.
func (s *Server) GetQuotes(c *fiber.Ctx) error {
	return c.JSON(s.store.ApprovedQuotes())
}

// CreateQuote handles POST /api/quotes. Submissions always enter the
// moderation queue unapproved.
func (s *Server) CreateQuote(c *fiber.Ctx) error {
	var req models.InsertQuote
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid quote data"))
	}

	if errs := validation.ValidateQuote(req); len(errs) > 0 {
		return respondFieldErrors(c, "Invalid quote data", errs)
	}

	req.Content = strings.TrimSpace(req.Content)
	quote := s.store.CreateQuote(req)
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// GetPendingQuotes handles GET /api/quotes/pending (admin only).
func (s *Server) GetPendingQuotes(c *fiber.Ctx) error {
	return c.JSON(s.store.PendingQuotes())
}

// ApproveQuote handles POST /api/quotes/:id/approve (admin only).
func (s *Server) ApproveQuote(c *fiber.Ctx) error {
	id := c.Params("id")

	quote, err := s.store.ApproveQuote(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Quote", id))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(quote)
}

package server

import (
	"strings"

	"haven/internal/models"
	"haven/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetFaqQuestions handles GET /api/faq.
func (s *Server) GetFaqQuestions(c *fiber.Ctx) error {
	return c.JSON(s.store.AllFaqQuestions())
}

// SubmitFaqQuestion handles POST /api/faq. The submitted question is stored
// with a placeholder answer until a moderator writes a real one.
func (s *Server) SubmitFaqQuestion(c *fiber.Ctx) error {
	var req struct {
		Question string `json:"question"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid question data"))
	}

	if errs := validation.ValidateFaqQuestion(req.Question); len(errs) > 0 {
		return respondFieldErrors(c, "Invalid question data", errs)
	}

	question := s.store.CreateFaqQuestion(models.InsertFaqQuestion{
		Question: strings.TrimSpace(req.Question),
		Answer:   models.PlaceholderFaqAnswer,
	})

	return c.Status(fiber.StatusCreated).JSON(question)
}

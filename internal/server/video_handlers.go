package server

import (
	"haven/internal/models"
	"haven/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetVideos handles GET /api/videos.
func (s *Server) GetVideos(c *fiber.Ctx) error {
	return c.JSON(s.store.AllVideos())
}

// CreateVideo handles POST /api/videos (admin only).
func (s *Server) CreateVideo(c *fiber.Ctx) error {
	var req models.InsertVideo
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid video data"))
	}

	if errs := validation.ValidateVideo(req); len(errs) > 0 {
		return respondFieldErrors(c, "Invalid video data", errs)
	}

	video := s.store.CreateVideo(req)
	return c.Status(fiber.StatusCreated).JSON(video)
}

package server

import (
	"haven/internal/models"
	"haven/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetBlogPosts handles GET /api/blog.
func (s *Server) GetBlogPosts(c *fiber.Ctx) error {
	return c.JSON(s.store.AllBlogPosts())
}

// CreateBlogPost handles POST /api/blog (admin only).
func (s *Server) CreateBlogPost(c *fiber.Ctx) error {
	var req models.InsertBlogPost
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid blog post data"))
	}

	if errs := validation.ValidateBlogPost(req); len(errs) > 0 {
		return respondFieldErrors(c, "Invalid blog post data", errs)
	}

	post := s.store.CreateBlogPost(req)
	return c.Status(fiber.StatusCreated).JSON(post)
}

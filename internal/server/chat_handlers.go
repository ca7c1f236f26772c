package server

import (
	"github.com/gofiber/fiber/v2"
)

// httpHistoryLimit is how many recent messages the HTTP endpoint returns.
// The websocket history event uses the smaller relay limit.
const httpHistoryLimit = 50

// GetChatMessages handles GET /api/chat/messages, the HTTP view of recent
// chat history for clients without a live connection.
func (s *Server) GetChatMessages(c *fiber.Ctx) error {
	return c.JSON(s.store.RecentChatMessages(httpHistoryLimit))
}

package server

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"haven/internal/middleware"
	"haven/internal/models"
	"haven/internal/notifications"
	"haven/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// historyLimit is how many stored messages a new connection receives.
const historyLimit = 20

// WebSocketChatHandler handles WebSocket connections for the global chat room.
func (s *Server) WebSocketChatHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := s.hub.Register(conn)
		client.IncomingHandler = s.handleChatFrame

		// Recent history goes to this connection only, oldest first.
		history := s.store.RecentChatMessages(historyLimit)
		if payload, err := json.Marshal(notifications.NewHistoryEvent(history)); err == nil {
			observability.WebSocketEventsTotal.WithLabelValues(notifications.EventHistory).Inc()
			client.TrySend(payload)
		}

		// Everyone, including this connection, learns the new count.
		s.hub.BroadcastUserCount()

		go client.WritePump()

		// ReadPump blocks until close or error, then unregisters the client,
		// which re-broadcasts the updated count.
		client.ReadPump()
	})
}

// handleChatFrame processes one inbound frame. Invalid frames are dropped
// without a reply; a bad frame never terminates the connection.
func (s *Server) handleChatFrame(_ *notifications.Client, raw []byte) {
	var in notifications.Inbound
	if err := json.Unmarshal(raw, &in); err != nil {
		middleware.Logger.Warn("chat: dropping unparseable frame", "error", err)
		observability.ChatMessagesDropped.WithLabelValues("parse_error").Inc()
		return
	}

	switch in.Type {
	case notifications.EventChatMessage:
		content := strings.TrimSpace(in.Content)
		if content == "" {
			observability.ChatMessagesDropped.WithLabelValues("empty").Inc()
			return
		}
		if utf8.RuneCountInString(content) > models.MaxChatContentLength {
			observability.ChatMessagesDropped.WithLabelValues("too_long").Inc()
			return
		}

		message := s.store.CreateChatMessage(models.InsertChatMessage{
			Username: strings.TrimSpace(in.Username),
			Content:  content,
		})

		observability.WebSocketEventsTotal.WithLabelValues(notifications.EventNewMessage).Inc()
		s.hub.Broadcast(notifications.NewNewMessageEvent(message))
	default:
		// Unknown tags are rejected explicitly rather than falling through.
		observability.ChatMessagesDropped.WithLabelValues("unknown_type").Inc()
	}
}

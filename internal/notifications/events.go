// Package notifications manages the set of live chat connections and the
// JSON-framed events exchanged over them.
package notifications

import "haven/internal/models"

// Server-to-client event tags.
const (
	EventHistory    = "history"
	EventNewMessage = "new_message"
	EventUserCount  = "user_count"
)

// EventChatMessage is the only client-to-server tag the relay accepts.
// Frames with any other tag are dropped.
const EventChatMessage = "chat_message"

// Inbound is the envelope of a client-to-server frame.
type Inbound struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Content  string `json:"content"`
}

// HistoryEvent delivers the recent message backlog to a newly connected
// client, oldest first.
type HistoryEvent struct {
	Type     string                `json:"type"`
	Messages []*models.ChatMessage `json:"messages"`
}

// NewHistoryEvent wraps messages in a history envelope.
func NewHistoryEvent(messages []*models.ChatMessage) HistoryEvent {
	return HistoryEvent{Type: EventHistory, Messages: messages}
}

// NewMessageEvent announces an accepted chat message to every client,
// including the sender.
type NewMessageEvent struct {
	Type    string              `json:"type"`
	Message *models.ChatMessage `json:"message"`
}

// NewNewMessageEvent wraps a stored message in a new_message envelope.
func NewNewMessageEvent(message *models.ChatMessage) NewMessageEvent {
	return NewMessageEvent{Type: EventNewMessage, Message: message}
}

// UserCountEvent announces the current number of open connections.
type UserCountEvent struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// NewUserCountEvent wraps a connection count in a user_count envelope.
func NewUserCountEvent(count int) UserCountEvent {
	return UserCountEvent{Type: EventUserCount, Count: count}
}

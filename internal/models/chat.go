package models

import "time"

const (
	// DefaultChatUsername is substituted when a chat message arrives without a username.
	DefaultChatUsername = "Anonymous"

	// MaxChatContentLength is the maximum accepted chat message length in runes.
	// Longer messages are silently dropped by the relay.
	MaxChatContentLength = 500
)

// ChatMessage is a single message in the global chat room.
type ChatMessage struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// InsertChatMessage is the payload for storing a new chat message.
type InsertChatMessage struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

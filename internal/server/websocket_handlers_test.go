package server

import (
	"encoding/json"
	"testing"
	"time"

	"haven/internal/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recvEvent drains one broadcast frame from a client's send queue.
func recvEvent(t *testing.T, client *notifications.Client) map[string]any {
	t.Helper()

	select {
	case payload := <-client.Send:
		var event map[string]any
		require.NoError(t, json.Unmarshal(payload, &event))
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
		return nil
	}
}

func frame(t *testing.T, in notifications.Inbound) []byte {
	t.Helper()
	payload, err := json.Marshal(in)
	require.NoError(t, err)
	return payload
}

func TestHandleChatFrame_ValidMessage(t *testing.T) {
	s, _ := newTestServer(t)
	sender := s.hub.Register(nil)
	other := s.hub.Register(nil)

	s.handleChatFrame(sender, frame(t, notifications.Inbound{
		Type:     notifications.EventChatMessage,
		Username: "  alice  ",
		Content:  "  hello everyone  ",
	}))

	// Stored with trimmed fields.
	stored := s.store.RecentChatMessages(10)
	require.Len(t, stored, 1)
	assert.Equal(t, "alice", stored[0].Username)
	assert.Equal(t, "hello everyone", stored[0].Content)

	// Broadcast to everyone, the sender included.
	for _, client := range []*notifications.Client{sender, other} {
		event := recvEvent(t, client)
		assert.Equal(t, notifications.EventNewMessage, event["type"])
		message, ok := event["message"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "hello everyone", message["content"])
	}
}

func TestHandleChatFrame_DefaultsUsername(t *testing.T) {
	s, _ := newTestServer(t)
	sender := s.hub.Register(nil)

	s.handleChatFrame(sender, frame(t, notifications.Inbound{
		Type:    notifications.EventChatMessage,
		Content: "hi",
	}))

	stored := s.store.RecentChatMessages(10)
	require.Len(t, stored, 1)
	assert.Equal(t, "Anonymous", stored[0].Username)
}

func TestHandleChatFrame_DropsInvalidFrames(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"Unparseable JSON", []byte("{not json")},
		{"Unknown tag", []byte(`{"type":"presence","content":"hi"}`)},
		{"Empty content", []byte(`{"type":"chat_message","username":"a","content":""}`)},
		{"Whitespace content", []byte(`{"type":"chat_message","username":"a","content":"   "}`)},
		{"Content too long", []byte(`{"type":"chat_message","content":"` + longString(501) + `"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t)
			sender := s.hub.Register(nil)

			s.handleChatFrame(sender, tt.raw)

			assert.Empty(t, s.store.RecentChatMessages(10), "nothing should be stored")
			select {
			case payload := <-sender.Send:
				t.Fatalf("unexpected broadcast: %s", payload)
			default:
			}
		})
	}
}

func TestHandleChatFrame_AcceptsMaxLengthContent(t *testing.T) {
	s, _ := newTestServer(t)
	sender := s.hub.Register(nil)

	s.handleChatFrame(sender, frame(t, notifications.Inbound{
		Type:    notifications.EventChatMessage,
		Content: longString(500),
	}))

	require.Len(t, s.store.RecentChatMessages(10), 1)
}

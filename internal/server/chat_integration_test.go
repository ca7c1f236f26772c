package server

import (
	"encoding/json"
	"fmt"
	"net"
	"testing"
	"time"

	"haven/internal/models"

	"github.com/gofiber/fiber/v2"
	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startRelay serves the app on a loopback listener and returns the ws URL.
func startRelay(t *testing.T, app *fiber.App) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "ws://" + ln.Addr().String() + "/ws"
}

// dialRelay connects to the relay, retrying while the listener comes up.
func dialRelay(t *testing.T, url string) *gws.Conn {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for {
		conn, _, err := gws.DefaultDialer.Dial(url, nil)
		if err == nil {
			t.Cleanup(func() { _ = conn.Close() })
			return conn
		}
		if time.Now().After(deadline) {
			t.Fatalf("failed to dial %s: %v", url, err)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func readEvent(t *testing.T, conn *gws.Conn) map[string]any {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event map[string]any
	require.NoError(t, json.Unmarshal(payload, &event))
	return event
}

// readEventOfType skips frames until one with the wanted tag arrives. Other
// clients joining or leaving can interleave user_count frames with the frame
// under test.
func readEventOfType(t *testing.T, conn *gws.Conn, eventType string) map[string]any {
	t.Helper()

	for i := 0; i < 10; i++ {
		event := readEvent(t, conn)
		if event["type"] == eventType {
			return event
		}
	}
	t.Fatalf("no %s event received", eventType)
	return nil
}

func TestChatRelay_RoundTrip(t *testing.T) {
	s, app := newTestServer(t)
	s.store.CreateChatMessage(models.InsertChatMessage{Username: "alice", Content: "earlier"})

	url := startRelay(t, app)
	conn := dialRelay(t, url)

	// A new connection receives history first, then the connection count.
	history := readEvent(t, conn)
	assert.Equal(t, "history", history["type"])
	messages, ok := history["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)

	count := readEvent(t, conn)
	assert.Equal(t, "user_count", count["type"])
	assert.Equal(t, float64(1), count["count"])

	// A sent message is stored and echoed back as new_message.
	require.NoError(t, conn.WriteJSON(map[string]string{
		"type": "chat_message", "username": "bob", "content": "hello",
	}))

	event := readEventOfType(t, conn, "new_message")
	message, ok := event["message"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bob", message["username"])
	assert.Equal(t, "hello", message["content"])

	require.Eventually(t, func() bool {
		return len(s.store.RecentChatMessages(10)) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestChatRelay_UserCountTracksConnections(t *testing.T) {
	s, app := newTestServer(t)
	url := startRelay(t, app)

	first := dialRelay(t, url)
	readEventOfType(t, first, "user_count")

	// A second connection raises the count for everyone.
	second := dialRelay(t, url)
	event := readEventOfType(t, second, "user_count")
	assert.Equal(t, float64(2), event["count"])

	event = readEventOfType(t, first, "user_count")
	assert.Equal(t, float64(2), event["count"])

	// Closing it drops the count back down and unregisters the client.
	require.NoError(t, second.Close())

	event = readEventOfType(t, first, "user_count")
	assert.Equal(t, float64(1), event["count"])

	require.Eventually(t, func() bool {
		return s.hub.Count() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestChatRelay_MessageReachesAllClients(t *testing.T) {
	_, app := newTestServer(t)
	url := startRelay(t, app)

	first := dialRelay(t, url)
	second := dialRelay(t, url)

	require.NoError(t, first.WriteJSON(map[string]string{
		"type": "chat_message", "content": "hi all",
	}))

	for _, conn := range []*gws.Conn{first, second} {
		event := readEventOfType(t, conn, "new_message")
		message, ok := event["message"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "hi all", message["content"])
		// No username supplied, so the default applies.
		assert.Equal(t, "Anonymous", message["username"])
	}
}

func TestChatRelay_HistoryCappedAtLimit(t *testing.T) {
	s, app := newTestServer(t)
	for i := 0; i < historyLimit+5; i++ {
		s.store.CreateChatMessage(models.InsertChatMessage{
			Username: "alice",
			Content:  fmt.Sprintf("message %d", i),
		})
	}

	url := startRelay(t, app)
	conn := dialRelay(t, url)

	// The history event carries only the most recent window, oldest first.
	event := readEvent(t, conn)
	assert.Equal(t, "history", event["type"])
	messages, ok := event["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, historyLimit)

	oldest, ok := messages[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "message 5", oldest["content"])

	newest, ok := messages[len(messages)-1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf("message %d", historyLimit+4), newest["content"])
}

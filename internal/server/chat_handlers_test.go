package server

import (
	"fmt"
	"net/http"
	"testing"

	"haven/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetChatMessages(t *testing.T) {
	s, app := newTestServer(t)

	for i := 0; i < 60; i++ {
		s.store.CreateChatMessage(models.InsertChatMessage{
			Username: "alice",
			Content:  fmt.Sprintf("message %d", i),
		})
	}

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/chat/messages", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var messages []models.ChatMessage
	decodeBody(t, resp, &messages)
	require.Len(t, messages, httpHistoryLimit)

	// The most recent window, oldest first.
	assert.Equal(t, "message 10", messages[0].Content)
	assert.Equal(t, "message 59", messages[len(messages)-1].Content)
}

func TestGetChatMessages_Empty(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/chat/messages", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var messages []models.ChatMessage
	decodeBody(t, resp, &messages)
	assert.Empty(t, messages)
}

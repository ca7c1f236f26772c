package server

import (
	"net/http"
	"testing"

	"haven/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVideo(t *testing.T) {
	s, app := newTestServer(t)

	resp, err := app.Test(asAdmin(t, s, jsonRequest(t, http.MethodPost, "/api/videos",
		models.InsertVideo{Title: "Guided breathing", URL: "https://example.com/watch?v=abc"})))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var video models.Video
	decodeBody(t, resp, &video)
	assert.NotEmpty(t, video.ID)
	assert.Equal(t, "Guided breathing", video.Title)
	assert.Equal(t, "", video.Description)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/videos", nil))
	require.NoError(t, err)
	var listed []models.Video
	decodeBody(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, video.ID, listed[0].ID)
}

func TestCreateVideo_RequiresAdmin(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/videos",
		models.InsertVideo{Title: "t", URL: "https://example.com"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCreateVideo_URLValidation(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		expectedStatus int
	}{
		{"Valid https", "https://example.com/v/1", http.StatusCreated},
		{"Valid http", "http://example.com/v/1", http.StatusCreated},
		{"Missing URL", "", http.StatusBadRequest},
		{"Relative path", "/videos/1", http.StatusBadRequest},
		{"Wrong scheme", "ftp://example.com/v/1", http.StatusBadRequest},
		{"No host", "https://", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, app := newTestServer(t)

			resp, err := app.Test(asAdmin(t, s, jsonRequest(t, http.MethodPost, "/api/videos",
				models.InsertVideo{Title: "t", URL: tt.url})))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			_ = resp.Body.Close()
		})
	}
}

package models

import "time"

// Video is a linked resource video shown on the resources page.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InsertVideo is the submission payload for a new video.
type InsertVideo struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

package models

import "time"

// PlaceholderFaqAnswer is stored with user-submitted questions until a real
// answer is written by a moderator.
const PlaceholderFaqAnswer = "Thank you for your question! We'll review it and provide an answer soon."

// FaqQuestion is a question/answer pair on the FAQ page.
type FaqQuestion struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertFaqQuestion is the payload for storing a new FAQ entry.
type InsertFaqQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

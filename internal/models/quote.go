// Package models contains data structures for the application's domain records.
package models

import "time"

// DefaultQuoteAuthor is substituted when a quote is submitted without an author.
const DefaultQuoteAuthor = "Unknown"

// Quote is an inspirational quote shown on the quotes wall. Submitted quotes
// start unapproved and are hidden from the public listing until an admin
// approves them.
type Quote struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertQuote is the submission payload for a new quote.
type InsertQuote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

package models

import "time"

// DefaultBlogAuthor is substituted when a blog post is created without an author.
const DefaultBlogAuthor = "Anonymous"

// BlogPost is an article on the blog page.
type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertBlogPost is the submission payload for a new blog post.
type InsertBlogPost struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Package store implements the in-memory record tables backing all entities.
// Records live only for the lifetime of the process; there is no durability.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"haven/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a record with the given ID does not exist.
var ErrNotFound = errors.New("record not found")

// Store holds one table per entity type. All methods are safe for concurrent
// use. Records are append-only except the quote approval flag, which is
// flipped exactly once by ApproveQuote; quote methods therefore return copies
// of the stored records, so a listing held by a caller is never written to by
// a concurrent approval.
type Store struct {
	mu sync.RWMutex

	// Tables are kept in insertion order; creation timestamps are assigned at
	// insert time, so insertion order and timestamp order coincide.
	quotes    []*models.Quote
	quoteByID map[string]*models.Quote
	messages  []*models.ChatMessage
	faqs      []*models.FaqQuestion
	posts     []*models.BlogPost
	videos    []*models.Video
	users     []*models.User
	userByID  map[string]*models.User
}

// New returns an empty Store. Seeding is explicit; see the seed package.
func New() *Store {
	return &Store{
		quoteByID: make(map[string]*models.Quote),
		userByID:  make(map[string]*models.User),
	}
}

// CreateQuote inserts a new quote. A missing author defaults to
// models.DefaultQuoteAuthor and the quote starts unapproved.
func (s *Store) CreateQuote(in models.InsertQuote) *models.Quote {
	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = models.DefaultQuoteAuthor
	}

	quote := &models.Quote{
		ID:        uuid.NewString(),
		Content:   in.Content,
		Author:    author,
		Approved:  false,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes = append(s.quotes, quote)
	s.quoteByID[quote.ID] = quote
	return copyQuote(quote)
}

// copyQuote returns a caller-owned copy of a stored quote. Must be called
// with the lock held when q is a table record.
func copyQuote(q *models.Quote) *models.Quote {
	out := *q
	return &out
}

// GetQuote returns the quote with the given ID or ErrNotFound.
func (s *Store) GetQuote(id string) (*models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quote, ok := s.quoteByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyQuote(quote), nil
}

// ApprovedQuotes returns approved quotes, newest first.
func (s *Store) ApprovedQuotes() []*models.Quote {
	return s.filterQuotes(true)
}

// PendingQuotes returns quotes awaiting approval, newest first.
func (s *Store) PendingQuotes() []*models.Quote {
	return s.filterQuotes(false)
}

// AllQuotes returns every quote regardless of approval state, newest first.
func (s *Store) AllQuotes() []*models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Quote, 0, len(s.quotes))
	for i := len(s.quotes) - 1; i >= 0; i-- {
		out = append(out, copyQuote(s.quotes[i]))
	}
	return out
}

func (s *Store) filterQuotes(approved bool) []*models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Quote, 0, len(s.quotes))
	for i := len(s.quotes) - 1; i >= 0; i-- {
		if s.quotes[i].Approved == approved {
			out = append(out, copyQuote(s.quotes[i]))
		}
	}
	return out
}

// ApproveQuote marks the quote with the given ID as approved and returns it.
// Approving an already-approved quote is a no-op. Returns ErrNotFound for an
// unknown ID.
func (s *Store) ApproveQuote(id string) (*models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quote, ok := s.quoteByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	quote.Approved = true
	return copyQuote(quote), nil
}

// CreateChatMessage inserts a new chat message. A missing username defaults to
// models.DefaultChatUsername. Content validation is the relay's concern.
func (s *Store) CreateChatMessage(in models.InsertChatMessage) *models.ChatMessage {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		username = models.DefaultChatUsername
	}

	message := &models.ChatMessage{
		ID:        uuid.NewString(),
		Username:  username,
		Content:   in.Content,
		Timestamp: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
	return message
}

// RecentChatMessages returns at most limit of the most recent messages in
// chronological (oldest-first) order, ready to render as history.
func (s *Store) RecentChatMessages(limit int) []*models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := 0
	if limit >= 0 && len(s.messages) > limit {
		start = len(s.messages) - limit
	}

	out := make([]*models.ChatMessage, len(s.messages)-start)
	copy(out, s.messages[start:])
	return out
}

// CreateFaqQuestion inserts a new FAQ entry.
func (s *Store) CreateFaqQuestion(in models.InsertFaqQuestion) *models.FaqQuestion {
	question := &models.FaqQuestion{
		ID:        uuid.NewString(),
		Question:  in.Question,
		Answer:    in.Answer,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.faqs = append(s.faqs, question)
	return question
}

// AllFaqQuestions returns every FAQ entry, newest first.
func (s *Store) AllFaqQuestions() []*models.FaqQuestion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.FaqQuestion, 0, len(s.faqs))
	for i := len(s.faqs) - 1; i >= 0; i-- {
		out = append(out, s.faqs[i])
	}
	return out
}

// CreateBlogPost inserts a new blog post. A missing author defaults to
// models.DefaultBlogAuthor.
func (s *Store) CreateBlogPost(in models.InsertBlogPost) *models.BlogPost {
	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = models.DefaultBlogAuthor
	}

	post := &models.BlogPost{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, post)
	return post
}

// AllBlogPosts returns every blog post, newest first.
func (s *Store) AllBlogPosts() []*models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.BlogPost, 0, len(s.posts))
	for i := len(s.posts) - 1; i >= 0; i-- {
		out = append(out, s.posts[i])
	}
	return out
}

// CreateVideo inserts a new video. A missing description defaults to empty.
func (s *Store) CreateVideo(in models.InsertVideo) *models.Video {
	video := &models.Video{
		ID:          uuid.NewString(),
		Title:       in.Title,
		URL:         in.URL,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = append(s.videos, video)
	return video
}

// AllVideos returns every video, newest first.
func (s *Store) AllVideos() []*models.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Video, 0, len(s.videos))
	for i := len(s.videos) - 1; i >= 0; i-- {
		out = append(out, s.videos[i])
	}
	return out
}

// CreateUser inserts a new user record. No route exercises users yet; the
// method exists for schema parity with the site.
func (s *Store) CreateUser(in models.InsertUser) *models.User {
	user := &models.User{
		ID:       uuid.NewString(),
		Username: in.Username,
		Password: in.Password,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	s.userByID[user.ID] = user
	return user
}

// GetUser returns the user with the given ID or ErrNotFound.
func (s *Store) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.userByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

// GetUserByUsername returns the user with the given username or ErrNotFound.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, ErrNotFound
}

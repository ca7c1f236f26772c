package seed

import (
	"fmt"
	"time"

	"haven/internal/models"
	"haven/internal/store"

	"github.com/brianvoe/gofakeit/v6"
)

// ApplyDemo fills the store with generated content for local development.
// Gated behind the SEED_DEMO config flag; never runs in production setups.
func ApplyDemo(s *store.Store) {
	gofakeit.Seed(time.Now().UnixNano())

	for i := 0; i < 8; i++ {
		quote := s.CreateQuote(models.InsertQuote{
			Content: gofakeit.Quote(),
			Author:  gofakeit.Name(),
		})
		// Approve most demo quotes, leave a couple pending for the admin view.
		if i%4 != 0 {
			_, _ = s.ApproveQuote(quote.ID)
		}
	}

	for i := 0; i < 5; i++ {
		s.CreateBlogPost(models.InsertBlogPost{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(2, 4, 8, "\n\n"),
			Author:  gofakeit.Name(),
		})
	}

	for i := 0; i < 3; i++ {
		s.CreateVideo(models.InsertVideo{
			Title:       gofakeit.Sentence(4),
			URL:         fmt.Sprintf("https://videos.example.com/%s", gofakeit.UUID()),
			Description: gofakeit.Sentence(10),
		})
	}

	for i := 0; i < 20; i++ {
		s.CreateChatMessage(models.InsertChatMessage{
			Username: gofakeit.Username(),
			Content:  gofakeit.Sentence(8),
		})
	}
}

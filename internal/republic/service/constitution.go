package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"republic/internal/republic/models"
	"republic/pkg/domain"
)

// SetPreamble replaces the constitution's preamble.
func (s *Service) SetPreamble(ctx context.Context, preamble string) *models.Document {
	preamble = strings.TrimSpace(preamble)

	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		if preamble == "" {
			return false
		}
		doc.Constitution.Preamble = preamble
		journal(doc, models.ActivityConstitution, "🏛️", "Updated the Preamble", now)
		return true
	})
}

// AddArticle ratifies a new constitutional article with the next sequential
// number.
func (s *Service) AddArticle(ctx context.Context, title, body string) *models.Document {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		if title == "" {
			return false
		}
		number := len(doc.Constitution.Articles) + 1
		article := models.NewArticle(domain.NewArticleID(), number, title, body, now)
		doc.Constitution.Articles = append(doc.Constitution.Articles, article)
		journal(doc, models.ActivityConstitution, "🏛️",
			fmt.Sprintf("Ratified Article %s: %s", domain.ToRoman(number), title), now)
		if s.metrics != nil {
			s.metrics.IncrementArticlesRatified()
		}
		return true
	})
}

// AmendArticle supersedes an article: the original is marked amended (never
// mutated or deleted otherwise) and a replacement with a fresh sequential
// number is appended pointing back at it. Numbers are never reassigned.
func (s *Service) AmendArticle(ctx context.Context, articleID domain.ArticleID, title, body string) *models.Document {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		if title == "" {
			return false
		}
		original := doc.FindArticle(articleID)
		if original == nil {
			return false
		}
		original.ApplySupersession()

		number := len(doc.Constitution.Articles) + 1
		amendment := models.NewAmendment(domain.NewArticleID(), number, title, body, articleID, now)
		doc.Constitution.Articles = append(doc.Constitution.Articles, amendment)
		journal(doc, models.ActivityConstitution, "🏛️", "Amended Article: "+title, now)
		if s.metrics != nil {
			s.metrics.IncrementArticlesRatified()
		}
		return true
	})
}

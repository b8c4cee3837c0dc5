package models

import (
	"time"

	id "republic/pkg/domain"
)

// ArticleStatus tracks whether a constitutional article is in force.
type ArticleStatus string

const (
	ArticleStatusActive  ArticleStatus = "active"
	ArticleStatusAmended ArticleStatus = "amended"
)

func (s ArticleStatus) IsValid() bool {
	switch s {
	case ArticleStatusActive, ArticleStatusAmended:
		return true
	}
	return false
}

// Article is a constitutional principle.
//
// Invariants:
//   - Articles are append-only: amending never mutates or deletes the
//     original beyond marking it amended
//   - Number is 1-based, sequential, and never reused or renumbered
//   - AmendmentOf points at the superseded article, nil for originals
type Article struct {
	ID           id.ArticleID  `json:"id"`
	Number       int           `json:"number"`
	Title        string        `json:"title"`
	Body         string        `json:"body"`
	RatifiedDate time.Time     `json:"ratifiedDate"`
	IsOriginal   bool          `json:"isOriginal"`
	AmendmentOf  *id.ArticleID `json:"amendmentOf"`
	Status       ArticleStatus `json:"status"`
}

func (a *Article) IsActive() bool {
	return a.Status == ArticleStatusActive
}

// ApplySupersession marks the article as amended. The replacement article is
// appended separately; this article keeps its number and text forever.
func (a *Article) ApplySupersession() {
	a.Status = ArticleStatusAmended
}

// NewArticle constructs an original (non-amendment) article.
func NewArticle(articleID id.ArticleID, number int, title, body string, now time.Time) *Article {
	return &Article{
		ID:           articleID,
		Number:       number,
		Title:        title,
		Body:         body,
		RatifiedDate: now,
		IsOriginal:   true,
		AmendmentOf:  nil,
		Status:       ArticleStatusActive,
	}
}

// NewAmendment constructs the replacement article for an amendment. It gets a
// fresh sequential number and records which article it supersedes.
func NewAmendment(articleID id.ArticleID, number int, title, body string, supersedes id.ArticleID, now time.Time) *Article {
	return &Article{
		ID:           articleID,
		Number:       number,
		Title:        title,
		Body:         body,
		RatifiedDate: now,
		IsOriginal:   false,
		AmendmentOf:  &supersedes,
		Status:       ArticleStatusActive,
	}
}

package memory

import (
	"context"
	"sync"

	"republic/internal/republic/models"
	"republic/pkg/platform/sentinel"
)

// InMemoryStore keeps the document in process memory. Used by tests and by
// ephemeral runs where durability does not matter.
type InMemoryStore struct {
	mu  sync.RWMutex
	doc *models.Document
}

// New creates an empty in-memory store.
func New() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Load(_ context.Context) (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return nil, sentinel.ErrNotFound
	}
	return s.doc.Clone(), nil
}

func (s *InMemoryStore) Save(_ context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	return nil
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"republic/internal/republic/models"
	"republic/pkg/platform/sentinel"
)

// documentKey is the single key holding the serialized document.
const documentKey = "republic:document"

// RedisStore persists the document as one JSON value in Redis. This is the
// remote-sync backend: the same document can be loaded from any host that
// can reach the Redis instance.
type RedisStore struct {
	client *redis.Client
}

// New constructs a Redis-backed document store.
func New(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context) (*models.Document, error) {
	raw, err := s.client.Get(ctx, documentKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("load document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

func (s *RedisStore) Save(ctx context.Context, doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.client.Set(ctx, documentKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

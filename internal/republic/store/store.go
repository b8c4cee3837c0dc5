// Package store defines the persistence contract for the republic document
// and the debounced saver that coalesces write-backs.
//
// Backends live in subpackages (memory, file, postgres, redis). Stores are
// pure I/O: merging loaded data with defaults and all domain logic belong to
// the service layer.
package store

import (
	"context"

	"republic/internal/republic/models"
)

// DocumentStore persists the single root document.
//
// Load returns sentinel.ErrNotFound (possibly wrapped) when nothing has been
// persisted yet. Save replaces whatever was stored before; the document is a
// single exclusively-owned aggregate, so there is nothing finer-grained to
// write.
type DocumentStore interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"republic/internal/republic/models"
	"republic/pkg/platform/sentinel"
)

// PostgresStore persists the document as a single JSONB row. This store is
// pure I/O — defaults merging and all domain logic belong in the service.
//
// The table holds at most one row; the singleton id column enforces that.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed document store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the document table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS republic_documents (
			id SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			doc JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure document schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*models.Document, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM republic_documents WHERE id = 1`).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
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

func (s *PostgresStore) Save(ctx context.Context, doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	query := `
		INSERT INTO republic_documents (id, doc, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET
			doc = EXCLUDED.doc,
			updated_at = now()
	`
	if _, err := s.db.ExecContext(ctx, query, raw); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

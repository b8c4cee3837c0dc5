// Package service implements the republic domain engine: one operation per
// user-facing action over a single exclusively-owned document.
//
// Every mutating operation follows the same contract: required inputs are
// trimmed and validated (an invalid call is a silent no-op, not an error),
// the transition is computed against a fresh deep copy, at most one activity
// entry is journaled, the new snapshot replaces the engine's document and is
// handed to the saver, and the caller gets back an immutable snapshot.
//
// Operations run to completion under the engine mutex, so no operation ever
// observes another one half-applied.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"republic/internal/republic/metrics"
	"republic/internal/republic/models"
	"republic/internal/republic/store"
	"republic/pkg/platform/sentinel"
	"republic/pkg/requestcontext"
)

// Scheduler receives document snapshots for eventual durable write-back.
// *store.Saver satisfies it.
type Scheduler interface {
	Schedule(doc *models.Document)
}

// Service is the domain state engine. It owns the document; collaborators
// only ever see snapshots or invoke operations.
type Service struct {
	documents store.DocumentStore
	saver     Scheduler
	logger    *slog.Logger
	metrics   *metrics.Metrics

	mu    sync.Mutex
	doc   *models.Document
	ready bool
}

type serviceConfig struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures optional service dependencies.
type Option func(*serviceConfig)

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *serviceConfig) { cfg.logger = logger }
}

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(cfg *serviceConfig) { cfg.metrics = m }
}

// New constructs the engine over a document store and a write scheduler.
// The engine starts with the default empty document; call Load before
// accepting mutations.
func New(documents store.DocumentStore, saver Scheduler, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return &Service{
		documents: documents,
		saver:     saver,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
		doc:       models.DefaultDocument(),
	}
}

// Load performs the one blocking read at startup. Loaded data is deep-merged
// against the default document shape so fields added after the document was
// persisted are always present. A missing document or a load failure both
// degrade to the default empty document; failures are logged, never fatal.
func (s *Service) Load(ctx context.Context) {
	doc, err := s.documents.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case err == nil:
		s.doc = doc.WithDefaults()
	case errors.Is(err, sentinel.ErrNotFound):
		s.doc = models.DefaultDocument()
	default:
		s.logger.Error("document load failed, starting from defaults", "error", err)
		s.doc = models.DefaultDocument()
	}
	s.ready = true
}

// Ready reports whether the initial load has completed. Callers should defer
// mutating operations until then.
func (s *Service) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Document returns a deep-copy snapshot of the current document.
func (s *Service) Document() *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// mutate runs fn against a fresh copy of the document under the engine
// mutex. If fn reports a change, the copy becomes the current document and a
// snapshot is scheduled for write-back. The returned snapshot never aliases
// engine-owned state.
func (s *Service) mutate(ctx context.Context, fn func(doc *models.Document, now time.Time) bool) *models.Document {
	now := requestcontext.Now(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	if fn(next, now) {
		s.doc = next
		if s.saver != nil {
			s.saver.Schedule(next.Clone())
		}
	}
	return s.doc.Clone()
}

// journal prepends a single activity entry, truncating to the ring limit.
func journal(doc *models.Document, entryType models.ActivityType, icon, text string, now time.Time) {
	doc.Activity = models.PrependActivity(doc.Activity, models.NewActivityEntry(entryType, icon, text, now))
}

// SetupRepublic founds the republic. Runs once; the profile is immutable
// afterwards, so a second call is a no-op. The name is required.
func (s *Service) SetupRepublic(ctx context.Context, name, motto string) *models.Document {
	name = strings.TrimSpace(name)
	motto = strings.TrimSpace(motto)

	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		if name == "" || doc.Republic.SetupComplete {
			return false
		}
		doc.Republic = models.Republic{
			Name:          name,
			Motto:         motto,
			FoundedDate:   &now,
			SetupComplete: true,
		}
		journal(doc, models.ActivityRepublic, "🏛️", "Founded the Republic of "+name, now)
		return true
	})
}

// AddActivity journals a collaborator-initiated entry.
func (s *Service) AddActivity(ctx context.Context, entryType models.ActivityType, icon, text string) *models.Document {
	text = strings.TrimSpace(text)

	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		if text == "" {
			return false
		}
		journal(doc, entryType, icon, text, now)
		return true
	})
}

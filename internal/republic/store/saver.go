package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"republic/internal/republic/models"
)

// DefaultDebounce is the quiet period before a scheduled snapshot is written.
const DefaultDebounce = time.Second

// saveTimeout bounds a single background write.
const saveTimeout = 10 * time.Second

// Saver coalesces document writes: every mutation schedules a write after a
// quiet period, and a newer snapshot arriving before the timer fires replaces
// the pending one. Only the latest snapshot within a burst is ever persisted
// (last-write-wins, not a queue).
//
// Writes are fire-and-forget: failures are logged and counted, never
// returned, and never block the caller.
type Saver struct {
	store     DocumentStore
	logger    *slog.Logger
	delay     time.Duration
	onFailure func(error)

	mu     sync.Mutex
	timer  *time.Timer
	latest *models.Document
}

// SaverOption configures a Saver.
type SaverOption func(*Saver)

// WithDelay overrides the debounce quiet period.
func WithDelay(d time.Duration) SaverOption {
	return func(s *Saver) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithOnFailure registers a callback invoked when a background write fails,
// in addition to logging. Used to feed metrics.
func WithOnFailure(fn func(error)) SaverOption {
	return func(s *Saver) { s.onFailure = fn }
}

// NewSaver constructs a debounced saver over the given store.
func NewSaver(documents DocumentStore, logger *slog.Logger, opts ...SaverOption) *Saver {
	s := &Saver{
		store:  documents,
		logger: logger,
		delay:  DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule records doc as the latest snapshot and (re)arms the write timer.
// The caller must hand over a snapshot it will not mutate afterwards.
func (s *Saver) Schedule(doc *models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = doc
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

// Flush writes any pending snapshot immediately and cancels the timer.
// Called on shutdown so the last burst of mutations is not lost.
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	doc := s.latest
	s.latest = nil
	s.mu.Unlock()

	if doc == nil {
		return nil
	}
	return s.store.Save(ctx, doc)
}

// fire runs on the timer goroutine when the quiet period elapses.
func (s *Saver) fire() {
	s.mu.Lock()
	doc := s.latest
	s.latest = nil
	s.timer = nil
	s.mu.Unlock()

	if doc == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := s.store.Save(ctx, doc); err != nil {
		s.logger.Error("document save failed", "error", err)
		if s.onFailure != nil {
			s.onFailure(err)
		}
	}
}

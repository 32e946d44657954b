// Package history keeps the bounded recent-query list per category.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"idlookup/internal/lookup/models"
	pstrings "idlookup/pkg/platform/strings"
	psync "idlookup/pkg/platform/sync"
)

// Capacity is the maximum number of entries kept per category.
const Capacity = 5

// DefaultKeyPrefix namespaces history keys in the backing store.
const DefaultKeyPrefix = "history:"

// ErrNotFound is returned by a KV when the key has never been written.
var ErrNotFound = errors.New("not found")

// KV is the persistence surface history is written through.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Recorder receives history failure counts. *metrics.Metrics satisfies it.
type Recorder interface {
	RecordHistoryWriteFailure(category string)
	RecordHistoryReadFailure(category string)
}

// Store reads and updates the per-category lists.
// Add is serialized per key in-process; across processes the read-modify-write
// is not atomic.
type Store struct {
	locks     *psync.ShardedMutex
	kv        KV
	keyPrefix string
	logger    *slog.Logger
	recorder  Recorder
}

// Option configures the Store.
type Option func(*Store)

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithKeyPrefix overrides DefaultKeyPrefix.
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		s.keyPrefix = prefix
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Store) {
		s.recorder = r
	}
}

// New creates a history Store over kv.
func New(kv KV, opts ...Option) *Store {
	s := &Store{
		locks:     psync.NewShardedMutex(),
		kv:        kv,
		keyPrefix: DefaultKeyPrefix,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the category's list, most recent first.
// Missing or corrupt state yields an empty list; Get never fails.
func (s *Store) Get(ctx context.Context, category models.Category) []string {
	key := s.key(category)
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to read history", "key", key, "error", err)
			s.recordReadFailure(category)
		}
		return []string{}
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.ErrorContext(ctx, "corrupt history entry", "key", key, "error", err)
		s.recordReadFailure(category)
		return []string{}
	}
	return pstrings.Truncate(pstrings.DedupeAndTrim(entries), Capacity)
}

// Add moves value to the front of the category's list and persists it.
// An empty value leaves the list unchanged. A failed write is logged and
// swallowed; the returned list is still what the caller should display.
func (s *Store) Add(ctx context.Context, category models.Category, value string) []string {
	if value == "" {
		return s.Get(ctx, category)
	}

	key := s.key(category)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	next := pstrings.MoveToFront(s.Get(ctx, category), value, Capacity)

	payload, err := json.Marshal(next)
	if err == nil {
		err = s.kv.Set(ctx, key, payload)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to write history", "key", key, "error", err)
		if s.recorder != nil {
			s.recorder.RecordHistoryWriteFailure(category.String())
		}
	}
	return next
}

func (s *Store) key(category models.Category) string {
	return s.keyPrefix + category.String()
}

func (s *Store) recordReadFailure(category models.Category) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordHistoryReadFailure(category.String())
}

// Package guard fetches the remote protected-value lists.
//
// Protection is best-effort: every failure degrades to an empty list so an
// unreachable list source never blocks a search. Anyone who can interfere with
// the list fetch can disable the guard, so it is not a security boundary.
package guard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"idlookup/internal/lookup/models"
	"idlookup/internal/lookup/providers/adapters"
)

// Array field names carrying the protected values in each list.
const (
	IdentityField = "aadhaar_numbers"
	NumberField   = "protected_numbers"
)

// Source locates one category's protected list.
type Source struct {
	URL   string
	Field string
}

// Set is a category's protected values.
type Set map[string]struct{}

// Contains reports whether v is protected.
func (s Set) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Recorder receives guard fetch outcomes. *metrics.Metrics satisfies it.
type Recorder interface {
	RecordGuardFailure(category, reason string)
	SetGuardEntries(category string, n int)
}

// Fetcher retrieves protected lists. It holds no list state between calls.
type Fetcher struct {
	sources  map[models.Category]Source
	client   adapters.HTTPDoer
	logger   *slog.Logger
	recorder Recorder
}

// Option configures the Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(client adapters.HTTPDoer) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithLogger sets the logger for the fetcher.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(f *Fetcher) {
		f.recorder = r
	}
}

// New creates a Fetcher for the given per-category sources.
func New(sources map[models.Category]Source, opts ...Option) *Fetcher {
	f := &Fetcher{
		sources: sources,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the category's protected values. It never fails: any problem
// is logged and yields an empty Set.
func (f *Fetcher) Fetch(ctx context.Context, category models.Category) Set {
	src, ok := f.sources[category]
	if !ok || src.URL == "" {
		f.logger.WarnContext(ctx, "no protected list configured", "category", category)
		return Set{}
	}

	body, reason, err := f.get(ctx, src.URL)
	if err != nil {
		f.logger.ErrorContext(ctx, "failed to fetch protected list",
			"category", category,
			"reason", reason,
			"error", err,
		)
		f.recordFailure(category, reason)
		return Set{}
	}

	if !gjson.ValidBytes(body) {
		f.logger.ErrorContext(ctx, "failed to parse protected list",
			"category", category,
			"bytes", len(body),
		)
		f.recordFailure(category, "parse")
		return Set{}
	}

	set := Set{}
	list := gjson.GetBytes(body, src.Field)
	if list.IsArray() {
		for _, v := range list.Array() {
			s := strings.TrimSpace(v.String())
			if s != "" {
				set[s] = struct{}{}
			}
		}
	}

	if f.recorder != nil {
		f.recorder.SetGuardEntries(category.String(), len(set))
	}
	return set
}

// get performs the GET and returns the body or a failure reason label.
func (f *Fetcher) get(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "request", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "network", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "status", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "network", err
	}
	return body, "", nil
}

func (f *Fetcher) recordFailure(category models.Category, reason string) {
	if f.recorder == nil {
		return
	}
	f.recorder.RecordGuardFailure(category.String(), reason)
}

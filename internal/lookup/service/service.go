// Package service runs the per-category search pipeline:
// validate → guard check → upstream fetch → normalize → history update.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"idlookup/internal/lookup/guard"
	"idlookup/internal/lookup/models"
	"idlookup/internal/lookup/providers"
	"idlookup/internal/lookup/tracer"
)

// Upstream issues the lookup request and returns a body that is valid JSON.
type Upstream interface {
	Fetch(ctx context.Context, query string) ([]byte, error)
}

// GuardLister returns the category's protected values. It must not fail.
type GuardLister interface {
	Fetch(ctx context.Context, category models.Category) guard.Set
}

// HistoryStore is the bounded recent-query list.
type HistoryStore interface {
	Get(ctx context.Context, category models.Category) []string
	Add(ctx context.Context, category models.Category, value string) []string
}

// Recorder receives search metrics. *metrics.Metrics satisfies it.
type Recorder interface {
	RecordSearch(category, outcome string)
	ObserveUpstreamDuration(category string, durationSeconds float64)
}

// Normalizer converts a raw upstream body into the category's record.
// It returns a *providers.LookupError of kind not_found or invalid_response on failure.
type Normalizer[R any] func(body []byte, query string) (*R, error)

// Result is a successful search.
type Result[R any] struct {
	Category models.Category `json:"category"`
	Query    string          `json:"query"`
	Record   *R              `json:"record"`
	History  []string        `json:"history"`
}

type options struct {
	logger   *slog.Logger
	tracer   tracer.Tracer
	recorder Recorder
}

// Option configures a Service.
type Option func(*options)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracer sets the tracer for the service.
func WithTracer(t tracer.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}

// Service is one category's search orchestrator. Its collaborators are the
// only state it touches; two Services never share mutable state except
// through the category-keyed history store.
type Service[R any] struct {
	category  models.Category
	upstream  Upstream
	guard     GuardLister
	history   HistoryStore
	normalize Normalizer[R]
	options
}

// New creates a search orchestrator for one category.
func New[R any](
	category models.Category,
	upstream Upstream,
	guardList GuardLister,
	history HistoryStore,
	normalize Normalizer[R],
	opts ...Option,
) *Service[R] {
	o := options{
		logger: slog.New(slog.DiscardHandler),
		tracer: tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Service[R]{
		category:  category,
		upstream:  upstream,
		guard:     guardList,
		history:   history,
		normalize: normalize,
		options:   o,
	}
}

// Category returns the category this service searches.
func (s *Service[R]) Category() models.Category {
	return s.category
}

// History returns the category's recent queries, most recent first.
func (s *Service[R]) History(ctx context.Context) []string {
	return s.history.Get(ctx, s.category)
}

// Search runs one search attempt. No step is retried.
//
// Errors: always a *providers.LookupError; use providers.UserMessage for display.
//   - validation: query is not exactly DigitCount ASCII digits; no network call is made
//   - blocked: query is protected; no lookup call is made
//   - network / parse: the upstream call failed
//   - not_found / invalid_response: the normalizer rejected the reply
func (s *Service[R]) Search(ctx context.Context, query string) (result *Result[R], err error) {
	queryHash := tracer.HashQuery(query)
	ctx, span := s.tracer.Start(ctx, tracer.SpanSearch,
		tracer.String(tracer.AttrCategory, s.category.String()),
		tracer.String(tracer.AttrQueryHash, queryHash),
	)
	defer func() {
		outcome := outcomeFor(err)
		span.SetAttributes(tracer.String(tracer.AttrOutcome, outcome))
		span.End(err)
		if s.recorder != nil {
			s.recorder.RecordSearch(s.category.String(), outcome)
		}
	}()

	if !validQuery(s.category, query) {
		return nil, providers.NewValidationError(s.category)
	}

	if s.isProtected(ctx, query) {
		s.logger.WarnContext(ctx, "search blocked by protected list",
			"category", s.category,
			"query_hash", queryHash,
		)
		return nil, providers.NewLookupError(providers.KindBlocked, s.category, providers.MsgBlocked, nil)
	}

	body, err := s.fetch(ctx, query)
	if err != nil {
		s.logger.WarnContext(ctx, "upstream lookup failed",
			"category", s.category,
			"query_hash", queryHash,
			"kind", providers.KindOf(err),
			"error", err,
		)
		return nil, err
	}

	record, err := s.normalize(body, query)
	if err != nil {
		s.logger.InfoContext(ctx, "upstream reply rejected",
			"category", s.category,
			"query_hash", queryHash,
			"kind", providers.KindOf(err),
		)
		return nil, asLookupError(s.category, err)
	}

	history := s.history.Add(ctx, s.category, query)
	span.AddEvent(tracer.EventHistoryUpdated, tracer.Int64("entries", int64(len(history))))

	return &Result[R]{
		Category: s.category,
		Query:    query,
		Record:   record,
		History:  history,
	}, nil
}

func (s *Service[R]) isProtected(ctx context.Context, query string) bool {
	ctx, span := s.tracer.Start(ctx, tracer.SpanGuard)
	set := s.guard.Fetch(ctx, s.category)
	blocked := set.Contains(query)
	span.SetAttributes(
		tracer.Int64(tracer.AttrGuardSize, int64(len(set))),
		tracer.Bool(tracer.AttrBlocked, blocked),
	)
	span.End(nil)
	return blocked
}

func (s *Service[R]) fetch(ctx context.Context, query string) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanUpstream)
	start := time.Now()
	body, err := s.upstream.Fetch(ctx, query)
	if s.recorder != nil {
		s.recorder.ObserveUpstreamDuration(s.category.String(), time.Since(start).Seconds())
	}
	if err != nil {
		err = asLookupError(s.category, err)
	}
	span.End(err)
	return body, err
}

// validQuery reports whether q is exactly the category's digit count of ASCII digits.
func validQuery(category models.Category, q string) bool {
	if n := category.DigitCount(); n == 0 || len(q) != n {
		return false
	}
	for i := 0; i < len(q); i++ {
		if q[i] < '0' || q[i] > '9' {
			return false
		}
	}
	return true
}

func asLookupError(category models.Category, err error) error {
	var le *providers.LookupError
	if errors.As(err, &le) {
		return err
	}
	return providers.NewLookupError(providers.KindInternal, category, providers.MsgSomethingWrong, err)
}

// Terminal outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeBlocked  = "blocked"
	OutcomeNetwork  = "network_error"
	OutcomeParse    = "parse_error"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeInternal = "internal_error"
)

func outcomeFor(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	switch providers.KindOf(err) {
	case providers.KindValidation:
		return OutcomeRejected
	case providers.KindBlocked:
		return OutcomeBlocked
	case providers.KindNetwork:
		return OutcomeNetwork
	case providers.KindParse:
		return OutcomeParse
	case providers.KindNotFound:
		return OutcomeNotFound
	case providers.KindInvalidResponse:
		return OutcomeInvalid
	default:
		return OutcomeInternal
	}
}

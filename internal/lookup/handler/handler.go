package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"idlookup/internal/lookup/models"
	"idlookup/internal/lookup/providers"
	"idlookup/internal/lookup/service"
	"idlookup/internal/platform/middleware"
	"idlookup/internal/platform/privacy"
	dErrors "idlookup/pkg/domain-errors"
	"idlookup/pkg/platform/httputil"
)

// Searcher is one category's orchestrator as seen by the HTTP layer.
type Searcher[R any] interface {
	Search(ctx context.Context, query string) (*service.Result[R], error)
	History(ctx context.Context) []string
}

// Handler serves lookups and recent-query history for both categories.
type Handler struct {
	identity Searcher[models.IdentityRecord]
	number   Searcher[models.NumberRecord]
	logger   *slog.Logger
}

// New creates the lookup handler.
func New(identity Searcher[models.IdentityRecord], number Searcher[models.NumberRecord], logger *slog.Logger) *Handler {
	return &Handler{identity: identity, number: number, logger: logger}
}

// Register mounts the lookup routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/lookup/identity/{value}", h.HandleIdentityLookup)
	r.Get("/lookup/number/{value}", h.HandleNumberLookup)
	r.Get("/history/{category}", h.HandleHistory)
}

// HandleIdentityLookup searches one 12-digit identity number.
func (h *Handler) HandleIdentityLookup(w http.ResponseWriter, r *http.Request) {
	serveSearch(h, h.identity, models.CategoryIdentity, w, r)
}

// HandleNumberLookup searches one 10-digit phone number.
func (h *Handler) HandleNumberLookup(w http.ResponseWriter, r *http.Request) {
	serveSearch(h, h.number, models.CategoryNumber, w, r)
}

// HandleHistory returns a category's recent queries, most recent first.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	category, err := models.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeNotFound, "unknown category"))
		return
	}

	var entries []string
	switch category {
	case models.CategoryIdentity:
		entries = h.identity.History(r.Context())
	case models.CategoryNumber:
		entries = h.number.History(r.Context())
	}

	httputil.WriteJSON(w, http.StatusOK, &HistoryResponse{
		Category: category,
		Entries:  nonNil(entries),
	})
}

func serveSearch[R any](h *Handler, s Searcher[R], category models.Category, w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	value := chi.URLParam(r, "value")
	result, err := s.Search(ctx, value)
	if err != nil {
		if providers.KindOf(err) == providers.KindInternal {
			h.logger.ErrorContext(ctx, "search failed",
				"category", category,
				"value", privacy.MaskValue(value),
				"error", err,
				"request_id", requestID,
			)
		}
		httputil.WriteError(w, toDomainError(err))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &SearchResponse[R]{
		Category: result.Category,
		Record:   result.Record,
		History:  nonNil(result.History),
	})
}

// toDomainError maps a lookup failure to the transport-agnostic error carrying
// the single user-facing message.
func toDomainError(err error) error {
	code := dErrors.CodeInternal
	switch providers.KindOf(err) {
	case providers.KindValidation:
		code = dErrors.CodeValidation
	case providers.KindBlocked:
		code = dErrors.CodeForbidden
	case providers.KindNotFound:
		code = dErrors.CodeNotFound
	case providers.KindNetwork:
		code = dErrors.CodeUpstream
	case providers.KindParse, providers.KindInvalidResponse:
		code = dErrors.CodeUnprocessable
	}
	return &dErrors.Error{Code: code, Message: providers.UserMessage(err), Err: err}
}

func nonNil(entries []string) []string {
	if entries == nil {
		return []string{}
	}
	return entries
}

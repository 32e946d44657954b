package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"idlookup/internal/lookup/models"
	"idlookup/internal/lookup/providers"
)

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPAdapterConfig configures an HTTP lookup adapter
type HTTPAdapterConfig struct {
	Category models.Category
	// BaseURL is the upstream endpoint; the query is set as Param on it.
	BaseURL string
	Param   string
	// RelayURL, when set, is prefixed to the URL-encoded target.
	RelayURL   string
	Timeout    time.Duration
	HTTPClient HTTPDoer
}

// HTTPAdapter issues lookup GETs and returns the raw JSON body.
type HTTPAdapter struct {
	category models.Category
	baseURL  string
	param    string
	relayURL string
	client   HTTPDoer
}

// New creates a new HTTP lookup adapter
func New(cfg HTTPAdapterConfig) *HTTPAdapter {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &HTTPAdapter{
		category: cfg.Category,
		baseURL:  cfg.BaseURL,
		param:    cfg.Param,
		relayURL: cfg.RelayURL,
		client:   selectHTTPClient(cfg),
	}
}

func selectHTTPClient(cfg HTTPAdapterConfig) HTTPDoer {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}

	return &http.Client{
		Timeout: cfg.Timeout,
	}
}

// Category returns the category this adapter serves
func (a *HTTPAdapter) Category() models.Category {
	return a.category
}

// RequestURL builds the outbound URL for a query, applying the relay wrapper when configured.
func (a *HTTPAdapter) RequestURL(query string) (string, error) {
	target, err := url.Parse(a.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse lookup url: %w", err)
	}
	values := target.Query()
	values.Set(a.param, query)
	target.RawQuery = values.Encode()

	if a.relayURL == "" {
		return target.String(), nil
	}
	return a.relayURL + url.QueryEscape(target.String()), nil
}

// Fetch performs one lookup GET. The returned body is guaranteed to be valid JSON.
func (a *HTTPAdapter) Fetch(ctx context.Context, query string) ([]byte, error) {
	reqURL, err := a.RequestURL(query)
	if err != nil {
		return nil, providers.NewLookupError(
			providers.KindInternal,
			a.category,
			providers.MsgSomethingWrong,
			err,
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, providers.NewLookupError(
			providers.KindInternal,
			a.category,
			providers.MsgSomethingWrong,
			err,
		)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, providers.NewLookupError(
				providers.KindInternal,
				a.category,
				providers.MsgSomethingWrong,
				err,
			)
		}
		return nil, providers.NewLookupError(
			providers.KindNetwork,
			a.category,
			providers.MsgConnectivity,
			err,
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, providers.NewLookupError(
			providers.KindNetwork,
			a.category,
			providers.MsgConnectivity,
			err,
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, providers.NewStatusError(a.category, resp.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		return nil, providers.NewLookupError(
			providers.KindParse,
			a.category,
			providers.MsgUnparseable,
			fmt.Errorf("response body is not valid JSON (%d bytes)", len(body)),
		)
	}

	return body, nil
}

package pixabay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/five82/shutter/internal/metrics"
)

// Fetcher is implemented by *Client and can be replaced in tests.
type Fetcher interface {
	FetchImages(ctx context.Context, query string, page int) (Result, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the Pixabay image API.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
	logger    zerolog.Logger
}

const (
	// DefaultBaseURL is the public image search endpoint.
	DefaultBaseURL = "https://pixabay.com/api/"

	// PerPage is the fixed page size requested from the API.
	PerPage = 40

	defaultUserAgent = "shutter/0.1"
	requestTimeout   = 10 * time.Second
)

// Options tune a Client. The zero value is usable.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zerolog.Logger
}

// NewClient builds a Client for the given API key.
func NewClient(apiKey string, opts Options) (*Client, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = requestTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Client{
		baseURL:   base,
		apiKey:    key,
		http:      httpClient,
		userAgent: defaultUserAgent,
		logger:    logger,
	}, nil
}

// FetchImages retrieves one page of photo results for query. Pages below 1 are
// treated as the first page. Any failure is logged and reported as ErrFetch.
func (c *Client) FetchImages(ctx context.Context, query string, page int) (Result, error) {
	if c == nil {
		return Result{}, ErrFetch
	}
	if page < 1 {
		page = 1
	}

	reqID := xid.New().String()
	logger := c.logger.With().
		Str("request_id", reqID).
		Str("query", query).
		Int("page", page).
		Logger()

	start := time.Now()
	payload, outcome, err := c.get(ctx, c.searchURL(query, page))
	metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.FetchRequests.WithLabelValues(outcome).Inc()
		logger.Error().Err(err).Str("outcome", outcome).Msg("image request failed")
		return Result{}, ErrFetch
	}

	if len(payload.Hits) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.FetchRequests.WithLabelValues(outcome).Inc()
	logger.Debug().
		Int("hits", len(payload.Hits)).
		Int("total_hits", payload.TotalHits).
		Dur("duration", time.Since(start)).
		Msg("image request completed")

	hits := payload.Hits
	if hits == nil {
		hits = []Hit{}
	}
	return Result{Hits: hits, TotalHits: payload.TotalHits}, nil
}

func (c *Client) searchURL(query string, page int) *url.URL {
	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", query)
	values.Set("image_type", "photo")
	values.Set("orientation", "horizontal")
	values.Set("safesearch", "true")
	values.Set("per_page", strconv.Itoa(PerPage))
	values.Set("page", strconv.Itoa(page))

	u := *c.baseURL
	u.RawQuery = values.Encode()
	return &u
}

func (c *Client) get(ctx context.Context, reqURL *url.URL) (SearchResponse, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return SearchResponse{}, metrics.OutcomeTransport, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return SearchResponse{}, metrics.OutcomeTransport, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return SearchResponse{}, metrics.OutcomeHTTP, fmt.Errorf("api returned status %d", resp.StatusCode)
	}

	var payload SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return SearchResponse{}, metrics.OutcomeDecode, fmt.Errorf("decode response: %w", err)
	}
	if payload.TotalHits < 0 {
		return SearchResponse{}, metrics.OutcomeDecode, fmt.Errorf("decode response: negative totalHits %d", payload.TotalHits)
	}
	return payload, metrics.OutcomeOK, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

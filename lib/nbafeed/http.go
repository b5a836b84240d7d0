// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nbafeed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"github.com/bureau-foundation/nbascores/lib/clock"
	"github.com/bureau-foundation/nbascores/lib/feedcache"
	"github.com/bureau-foundation/nbascores/lib/netutil"
	"github.com/bureau-foundation/nbascores/lib/version"
)

// DefaultBaseURL is the public feed server.
const DefaultBaseURL = "http://data.nba.com"

// HTTPConfig holds configuration for an HTTPFetcher.
type HTTPConfig struct {
	// BaseURL is the scheme and host of the feed server. Defaults to
	// DefaultBaseURL.
	BaseURL string

	// HTTPClient performs requests. Defaults to a client whose
	// transport negotiates gzip.
	HTTPClient *http.Client

	// Timeout bounds each attempt. Defaults to 10s.
	Timeout time.Duration

	// UserAgent and Referer headers. The feed server refuses requests
	// that look like scripts, so both default to browser-like values.
	UserAgent string
	Referer   string

	// Attempts is the total number of tries for transient failures.
	// Defaults to 3.
	Attempts int

	// BaseDelay is the backoff before the second attempt, doubled for
	// each further attempt. Defaults to 250ms.
	BaseDelay time.Duration

	// Cache holds bodies and validators for conditional GETs.
	// Defaults to a feedcache.MemoryStore.
	Cache feedcache.Store

	// Clock drives backoff waits. Defaults to clock.Real().
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// HTTPFetcher fetches feed documents from the feed server.
type HTTPFetcher struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	referer    string
	attempts   int
	baseDelay  time.Duration
	cache      feedcache.Store
	clock      clock.Clock
	logger     *slog.Logger
}

// NewHTTPFetcher creates an HTTPFetcher. Returns an error when BaseURL
// is not an http(s) URL.
func NewHTTPFetcher(config HTTPConfig) (*HTTPFetcher, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("nbafeed: base URL must be http or https (got %q)", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: gzhttp.Transport(http.DefaultTransport)}
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; " + version.UserAgent() + ")"
	}

	attempts := config.Attempts
	if attempts < 1 {
		attempts = 3
	}

	baseDelay := config.BaseDelay
	if baseDelay <= 0 {
		baseDelay = 250 * time.Millisecond
	}

	cache := config.Cache
	if cache == nil {
		cache = feedcache.NewMemoryStore()
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPFetcher{
		baseURL:    baseURL,
		httpClient: httpClient,
		timeout:    timeout,
		userAgent:  userAgent,
		referer:    config.Referer,
		attempts:   attempts,
		baseDelay:  baseDelay,
		cache:      cache,
		clock:      clk,
		logger:     logger,
	}, nil
}

// URL returns the absolute URL of resource.
func (fetcher *HTTPFetcher) URL(resource Resource) string {
	return fetcher.baseURL + resource.Path()
}

// Fetch retrieves resource, retrying transient failures with
// exponential backoff. Cancelling ctx abandons both the request in
// flight and any pending backoff wait.
func (fetcher *HTTPFetcher) Fetch(ctx context.Context, resource Resource) (Payload, error) {
	url := fetcher.URL(resource)
	if err := resource.validate(); err != nil {
		return Payload{}, &FetchError{Operation: resource.Operation(), URL: url, Err: err}
	}

	for attempt := 1; ; attempt++ {
		payload, err := fetcher.fetchOnce(ctx, resource, url)
		if err == nil {
			return payload, nil
		}
		if ctx.Err() != nil || !IsTransient(err) || attempt >= fetcher.attempts {
			return Payload{}, err
		}

		delay := fetcher.baseDelay << (attempt - 1)
		fetcher.logger.Warn("feed request failed, retrying",
			"url", url,
			"attempt", attempt,
			"delay", delay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return Payload{}, &FetchError{Operation: resource.Operation(), URL: url, Err: ctx.Err()}
		case <-fetcher.clock.After(delay):
		}
	}
}

func (fetcher *HTTPFetcher) fetchOnce(ctx context.Context, resource Resource, url string) (Payload, error) {
	fail := func(status int, err error) (Payload, error) {
		return Payload{}, &FetchError{Operation: resource.Operation(), URL: url, StatusCode: status, Err: err}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, fetcher.timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return fail(0, err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", fetcher.userAgent)
	if fetcher.referer != "" {
		request.Header.Set("Referer", fetcher.referer)
	}

	cached, haveCached := fetcher.cachedEntry(ctx, url)
	if haveCached {
		if cached.ETag != "" {
			request.Header.Set("If-None-Match", cached.ETag)
		}
		if cached.LastModified != "" {
			request.Header.Set("If-Modified-Since", cached.LastModified)
		}
	}

	response, err := fetcher.httpClient.Do(request)
	if err != nil {
		return fail(0, err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotModified && haveCached {
		fetcher.logger.Debug("feed not modified", "url", url, "digest", cached.Digest.Short())
		return Payload{
			Body:        cached.Body,
			Digest:      cached.Digest,
			Location:    url,
			NotModified: true,
			FetchedAt:   fetcher.clock.Now(),
		}, nil
	}

	if response.StatusCode != http.StatusOK {
		return fail(response.StatusCode, errors.New(statusMessage(response)))
	}

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return fail(0, err)
	}

	entry := feedcache.Entry{
		URL:          url,
		ETag:         response.Header.Get("ETag"),
		LastModified: response.Header.Get("Last-Modified"),
		Body:         body,
		Digest:       feedcache.Sum(body),
		FetchedAt:    fetcher.clock.Now(),
	}
	if entry.HasValidators() {
		if err := fetcher.cache.Put(ctx, entry); err != nil {
			fetcher.logger.Warn("feed cache write failed", "url", url, "error", err)
		}
	}

	return Payload{
		Body:      body,
		Digest:    entry.Digest,
		Location:  url,
		FetchedAt: entry.FetchedAt,
	}, nil
}

func (fetcher *HTTPFetcher) cachedEntry(ctx context.Context, url string) (feedcache.Entry, bool) {
	entry, ok, err := fetcher.cache.Get(ctx, url)
	if err != nil {
		fetcher.logger.Warn("feed cache read failed", "url", url, "error", err)
		return feedcache.Entry{}, false
	}
	if !ok || !entry.HasValidators() {
		return feedcache.Entry{}, false
	}
	return entry, true
}

func statusMessage(response *http.Response) string {
	text := netutil.ErrorBody(response.Body)
	if text == "" {
		return http.StatusText(response.StatusCode)
	}
	return text
}

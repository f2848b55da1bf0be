package jikan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/anisan-cli/jikancsv/constant"
	"github.com/anisan-cli/jikancsv/log"
	"github.com/anisan-cli/jikancsv/network"
	"github.com/anisan-cli/jikancsv/util"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultBackoff    = 2 * time.Second
	defaultMaxRetries = 5
)

// Client issues GET requests against the Jikan API.
// Requests are paced by a RateLimiter and HTTP 429 answers are retried after a backoff.
type Client struct {
	baseURL    string
	http       *http.Client
	limiter    *network.RateLimiter
	backoff    time.Duration
	maxRetries int
	cache      *cacher[string, []byte]
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root, such as a self-hosted Jikan or a test server.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// WithHTTPClient replaces the shared network client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithRateLimiter sets the pacing applied before every attempt.
func WithRateLimiter(l *network.RateLimiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithBackoff sets the wait after a 429 answer that carries no Retry-After header.
func WithBackoff(d time.Duration) Option {
	return func(c *Client) {
		c.backoff = d
	}
}

// WithMaxRetries bounds how often a rate limited request is retried.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = util.Max(n, 0)
	}
}

// WithCache stores successful responses in the file at path for the given lifetime.
func WithCache(path string, lifetime time.Duration) Option {
	return func(c *Client) {
		c.cache = newCacher[string, []byte](path, lifetime)
	}
}

// New returns a client for the public Jikan API unless options say otherwise.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    constant.JikanBaseURL,
		http:       network.Client,
		limiter:    network.NewRateLimiter(time.Second),
		backoff:    defaultBackoff,
		maxRetries: defaultMaxRetries,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get fetches endpoint with the given query parameters and returns the raw JSON body.
// Non-2xx answers other than 429 fail with a *RequestError carrying the status code.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	target := c.url(endpoint, params)
	logger := log.FromContext(ctx).WithField("endpoint", endpoint)

	if c.cache != nil {
		if body, ok := c.cache.Get(target).Get(); ok {
			logger.Debug("served from cache")
			return body, nil
		}
	}

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &RequestError{Endpoint: endpoint, Err: err}
		}

		logger.WithField("attempt", attempt+1).Debug("GET ", target)
		body, status, retryAfter, err := c.do(ctx, target)
		if err != nil {
			return nil, &RequestError{Endpoint: endpoint, Err: err}
		}

		if status == http.StatusTooManyRequests {
			if attempt >= c.maxRetries {
				return nil, &RequestError{Endpoint: endpoint, StatusCode: status}
			}

			wait := c.backoff
			if retryAfter > 0 {
				wait = retryAfter
			}

			logger.WithField("wait", wait.String()).Warn("rate limited, retrying")
			if err := sleep(ctx, wait); err != nil {
				return nil, &RequestError{Endpoint: endpoint, Err: err}
			}
			continue
		}

		if status < 200 || status >= 300 {
			logger.WithField("status", status).Warn("request failed")
			return nil, &RequestError{Endpoint: endpoint, StatusCode: status}
		}

		if c.cache != nil && json.Valid(body) {
			if err := c.cache.Set(target, body); err != nil {
				logger.Warn("cache write failed: ", err)
			}
		}

		return body, nil
	}
}

func (c *Client) do(ctx context.Context, target string) (body []byte, status int, retryAfter time.Duration, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, 0, err
	}
	defer util.Ignore(resp.Body.Close)

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, 0, fmt.Errorf("read body: %w", err)
	}

	return body, resp.StatusCode, parseRetryAfter(resp.Header.Get("Retry-After")), nil
}

func (c *Client) url(endpoint string, params url.Values) string {
	target := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(params) > 0 {
		// Encode sorts by key, so equal queries share a cache entry.
		target += "?" + params.Encode()
	}
	return target
}

// parseRetryAfter understands both delta-seconds and HTTP-date values.
func parseRetryAfter(value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(util.Max(seconds, 0)) * time.Second
	}

	if at, err := http.ParseTime(value); err == nil {
		return util.Max(time.Until(at), 0)
	}

	return 0
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// getJSON fetches endpoint and decodes the body into T.
func getJSON[T any](ctx context.Context, c *Client, endpoint string, params url.Values) (*T, error) {
	body, err := c.Get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("jikan %s: decode: %w", endpoint, err)
	}

	return &out, nil
}

package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/storekit-go/storekit"
)

// Client performs authenticated requests against one API origin. It is the
// production implementation of the pagination fetch collaborator.
//
// A Client is safe for concurrent use. Note that pages obtained through it
// still carry the pagination package's navigation caveats.
type Client struct {
	httpClient  *http.Client
	baseURL     *url.URL
	accessToken string
	userAgent   string
	tokens      oauth2.TokenSource
	log         *slog.Logger

	mu        sync.Mutex
	callLimit CallLimit
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default pooled HTTP client. This allows custom
// transports, proxies, or testing. Nil clients are ignored.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the structured logger for request/response metadata.
// The client is silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithTokenSource authenticates requests with OAuth bearer tokens instead of
// the static access-token header.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithUserAgent overrides the user agent string.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a Client for the configured API origin. Returns
// ErrInvalidBaseURL unless the base URL is an absolute http(s) URL.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = storekit.DefaultUserAgent
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:     base,
		accessToken: cfg.AccessToken,
		userAgent:   userAgent,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get performs an authenticated GET against rawURL, which may be absolute
// (as pagination link URLs are) or relative to the configured base URL.
//
// Non-2xx responses close the body and return ErrUnexpectedStatus; transport
// errors are returned as-is. No retries are performed. The caller owns the
// response body on success.
func (c *Client) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	u, err := c.resolve(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if err := c.authorize(req); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if limit, ok := ParseCallLimit(resp.Header); ok {
		c.mu.Lock()
		c.callLimit = limit
		c.mu.Unlock()
	}

	c.log.DebugContext(ctx, "api request",
		slog.String("method", http.MethodGet),
		slog.String("url", u),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	return resp, nil
}

// CallLimit returns the most recently observed API call budget, or the zero
// value if the server has not reported one yet.
func (c *Client) CallLimit() CallLimit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callLimit
}

func (c *Client) resolve(rawURL string) (string, error) {
	ref, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Join(ErrInvalidBaseURL, err)
	}
	return c.baseURL.ResolveReference(ref).String(), nil
}

func (c *Client) authorize(req *http.Request) error {
	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return errors.Join(ErrTokenSource, err)
		}
		tok.SetAuthHeader(req)
		return nil
	}
	if c.accessToken != "" {
		req.Header.Set("X-API-Access-Token", c.accessToken)
	}
	return nil
}

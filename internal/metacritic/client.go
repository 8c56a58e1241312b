package metacritic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Sentinel failure classes for the fetch layer.
var (
	// ErrTransport covers connection, TLS, timeout, and non-200 failures.
	ErrTransport = errors.New("metacritic transport failure")
	// ErrDecode covers response bodies that are not valid JSON.
	ErrDecode = errors.New("metacritic decode failure")
)

// DefaultBaseURL is the public Metacritic backend origin.
const DefaultBaseURL = "https://backend.metacritic.com"

// defaultTimeout bounds every outbound request. An unbounded request is a
// defect, so New always installs a timeout even when none is configured.
const defaultTimeout = 15 * time.Second

// Client issues authenticated-style GET requests against the Metacritic
// backend and decodes the JSON payloads.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client. Used by tests and by
// hosts that manage their own transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default 15 second request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a backend client. baseURL and userAgent must be non-empty.
func New(baseURL, userAgent string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("metacritic base url required")
	}
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return nil, errors.New("metacritic user agent required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Search queries the finder endpoint for the free-text title. The query is
// path-encoded; fixed parameters select the first 50 game-type entries.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	endpoint := fmt.Sprintf(
		"%s/finder/metacritic/search/%s/web?offset=0&limit=50&mcoTypeId=13",
		c.baseURL, url.PathEscape(query),
	)
	var payload SearchResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return &payload, nil
}

// Scores fetches the score detail record for a slug from the Scores component.
func (c *Client) Scores(ctx context.Context, slug string) (*ScoresResponse, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, errors.New("slug must not be empty")
	}
	endpoint := fmt.Sprintf(
		"%s/games/metacritic/%s/web?componentName=scores&componentDisplayName=Scores&componentType=ScoreSummary",
		c.baseURL, url.PathEscape(slug),
	)
	var payload ScoresResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("scores %q: %w", slug, err)
	}
	return &payload, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("%w: execute request (latency=%v): %v", ErrTransport, latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: backend returned %d (latency=%v)", ErrTransport, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrDecode, err)
	}
	return nil
}

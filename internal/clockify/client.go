// Package clockify is a small read-only client for the Clockify REST API:
// time entries of one user, and the projects and tags of a workspace.
package clockify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/xolan/clocksheet/internal/entry"
)

const (
	// DefaultBaseURL is the public Clockify API root
	DefaultBaseURL = "https://api.clockify.me/api/v1"
	// DefaultPageSize is the page size used when Settings.PageSize is zero
	DefaultPageSize = 200
	// DefaultMaxPages bounds pagination when Settings.MaxPages is zero
	DefaultMaxPages = 50

	apiKeyHeader = "X-Api-Key"
	maxErrorBody = 512
)

// ErrMissingCredentials is returned when the API key, workspace or user is not configured
var ErrMissingCredentials = errors.New("clockify credentials are not configured")

// StatusError is returned for non-2xx responses
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("clockify: unexpected status %d", e.Code)
	}
	return fmt.Sprintf("clockify: unexpected status %d: %s", e.Code, e.Body)
}

// Settings configures a Client
type Settings struct {
	BaseURL     string
	WorkspaceID string
	UserID      string
	APIKey      string
	Timeout     time.Duration
	PageSize    int
	MaxPages    int
}

// Client talks to the Clockify API
type Client struct {
	settings   Settings
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client. Zero settings fall back to the defaults.
func NewClient(s Settings, opts ...Option) *Client {
	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	s.BaseURL = strings.TrimRight(s.BaseURL, "/")
	if s.Timeout <= 0 {
		s.Timeout = 30 * time.Second
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	if s.MaxPages <= 0 {
		s.MaxPages = DefaultMaxPages
	}

	c := &Client{
		settings:   s,
		httpClient: &http.Client{Timeout: s.Timeout},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TimeEntries returns the time entries of the configured user between start
// and end. Both bounds are sent as given.
func (c *Client) TimeEntries(ctx context.Context, start, end string) ([]entry.TimeEntry, error) {
	path, err := c.timeEntriesPath()
	if err != nil {
		return nil, err
	}
	return fetchAll[entry.TimeEntry](ctx, c, path, windowQuery(start, end))
}

// TimeEntriesRaw returns the time entry payload between start and end as an
// indented JSON array, pages concatenated.
func (c *Client) TimeEntriesRaw(ctx context.Context, start, end string) ([]byte, error) {
	path, err := c.timeEntriesPath()
	if err != nil {
		return nil, err
	}

	items, err := fetchAll[json.RawMessage](ctx, c, path, windowQuery(start, end))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []json.RawMessage{}
	}

	out, err := sonic.ConfigDefault.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode time entries: %w", err)
	}
	return out, nil
}

// Projects returns all projects of the workspace
func (c *Client) Projects(ctx context.Context) ([]entry.Project, error) {
	if err := c.require(false); err != nil {
		return nil, err
	}
	return fetchAll[entry.Project](ctx, c, "/workspaces/"+url.PathEscape(c.settings.WorkspaceID)+"/projects", url.Values{})
}

// Tags returns all tags of the workspace
func (c *Client) Tags(ctx context.Context) ([]entry.Tag, error) {
	if err := c.require(false); err != nil {
		return nil, err
	}
	return fetchAll[entry.Tag](ctx, c, "/workspaces/"+url.PathEscape(c.settings.WorkspaceID)+"/tags", url.Values{})
}

func (c *Client) timeEntriesPath() (string, error) {
	if err := c.require(true); err != nil {
		return "", err
	}
	return "/workspaces/" + url.PathEscape(c.settings.WorkspaceID) +
		"/user/" + url.PathEscape(c.settings.UserID) + "/time-entries", nil
}

func (c *Client) require(user bool) error {
	var missing []string
	if c.settings.APIKey == "" {
		missing = append(missing, "api key")
	}
	if c.settings.WorkspaceID == "" {
		missing = append(missing, "workspace id")
	}
	if user && c.settings.UserID == "" {
		missing = append(missing, "user id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

func windowQuery(start, end string) url.Values {
	q := url.Values{}
	if start != "" {
		q.Set("start", start)
	}
	if end != "" {
		q.Set("end", end)
	}
	return q
}

// fetchAll requests consecutive pages until a short page arrives or the page
// limit is hit.
func fetchAll[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var all []T
	for page := 1; page <= c.settings.MaxPages; page++ {
		query.Set("page", strconv.Itoa(page))
		query.Set("page-size", strconv.Itoa(c.settings.PageSize))

		var items []T
		if err := c.get(ctx, path, query, &items); err != nil {
			return nil, err
		}
		all = append(all, items...)

		if len(items) < c.settings.PageSize {
			return all, nil
		}
		if page == c.settings.MaxPages {
			c.logger.Warn("clockify pagination limit reached, results may be incomplete",
				"path", path, "max_pages", c.settings.MaxPages)
		}
	}
	return all, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.settings.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.settings.APIKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("clockify request", "path", path, "page", query.Get("page"))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call clockify %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := strings.TrimSpace(string(body))
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody]
		}
		return &StatusError{Code: resp.StatusCode, Body: text}
	}

	if err := sonic.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode clockify response from %s: %w", path, err)
	}
	return nil
}

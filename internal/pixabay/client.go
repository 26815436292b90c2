// Package pixabay provides an HTTP client for the Pixabay image search API.
package pixabay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/javiermolinar/pixsearch/internal/search"
)

// Ensure Client implements search.Searcher at compile time.
var _ search.Searcher = (*Client)(nil)

const (
	defaultBaseURL   = "https://pixabay.com"
	defaultUserAgent = "pixsearch/dev"
	defaultTimeout   = 10 * time.Second
	defaultPerPage   = 12

	maxErrorBody = 512
)

// Options configure a Client.
type Options struct {
	BaseURL     string
	Key         string
	PerPage     int
	ImageType   string
	Orientation string
	SafeSearch  bool
	Timeout     time.Duration
	UserAgent   string
	HTTPClient  *http.Client // optional; Timeout is ignored when set
}

// Query configures one /api/ request.
type Query struct {
	Q    string
	Page int
}

// Client talks to the Pixabay HTTP API.
type Client struct {
	baseURL     *url.URL
	http        *http.Client
	key         string
	perPage     int
	imageType   string
	orientation string
	safeSearch  bool
	userAgent   string
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		baseURL:     base,
		http:        httpClient,
		key:         strings.TrimSpace(opts.Key),
		perPage:     perPage,
		imageType:   strings.TrimSpace(opts.ImageType),
		orientation: strings.TrimSpace(opts.Orientation),
		safeSearch:  opts.SafeSearch,
		userAgent:   userAgent,
	}, nil
}

// Search fetches one page of hits for query. It makes a single attempt.
func (c *Client) Search(ctx context.Context, query string, page int) (search.Result, error) {
	resp, err := c.Fetch(ctx, Query{Q: query, Page: page})
	if err != nil {
		return search.Result{}, err
	}
	return resp.Result(), nil
}

// Fetch performs a raw /api/ request.
func (c *Client) Fetch(ctx context.Context, query Query) (*SearchResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if c.key == "" {
		return nil, &APIError{StatusCode: http.StatusUnauthorized, Message: "api key is not configured"}
	}
	page := query.Page
	if page < 1 {
		page = 1
	}

	values := url.Values{}
	values.Set("key", c.key)
	values.Set("q", query.Q)
	values.Set("page", strconv.Itoa(page))
	values.Set("per_page", strconv.Itoa(c.perPage))
	if c.imageType != "" {
		values.Set("image_type", c.imageType)
	}
	if c.orientation != "" {
		values.Set("orientation", c.orientation)
	}
	values.Set("safesearch", strconv.FormatBool(c.safeSearch))

	rel := &url.URL{Path: "/api/", RawQuery: values.Encode()}
	var payload SearchResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: "execute request", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &NetworkError{Op: "decode response", Err: err}
	}
	return nil
}

// readErrorBody returns the plain-text message the API sends with error statuses,
// e.g. `[ERROR 400] "page" is out of valid range.`
func readErrorBody(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(body))
}

// IsNetworkError reports whether err is a transport failure.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsAPIError reports whether err is an API-level failure.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base_url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// Package preview downloads remote images and renders them as terminal
// half-block art.
package preview

import (
	"context"
	"fmt"
	"image"
	_ "image/gif" // register decoders
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	_ "golang.org/x/image/webp"
)

const (
	defaultTimeout  = 15 * time.Second
	defaultMaxBytes = 8 << 20
)

// Fetcher retrieves and decodes images over HTTP.
type Fetcher struct {
	HTTPClient *http.Client
	UserAgent  string
	MaxBytes   int64
}

// NewFetcher creates a new image fetcher.
func NewFetcher(userAgent string) *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
		UserAgent: userAgent,
		MaxBytes:  defaultMaxBytes,
	}
}

// Fetch downloads rawURL and decodes it as a JPEG, PNG or GIF.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (image.Image, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("image url is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	limit := f.MaxBytes
	if limit <= 0 {
		limit = defaultMaxBytes
	}
	img, _, err := image.Decode(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/pixsearch/internal/preview"
	"github.com/javiermolinar/pixsearch/internal/search"
)

// ImageFetcher downloads and decodes a remote image.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// SearchResultMsg is sent when a search request resolves.
type SearchResultMsg struct {
	Request search.Request
	Result  search.Result
	Err     error
	Elapsed time.Duration
}

// PreviewLoadedMsg is sent when the modal image has been downloaded.
type PreviewLoadedMsg struct {
	URL   string
	Image image.Image
	Err   error
}

// ThumbnailLoadedMsg is sent when a gallery thumbnail has been rendered.
type ThumbnailLoadedMsg struct {
	ID  int64
	Art preview.Art
	Err error
}

// ToastExpiredMsg is sent when a toast's lifetime is over.
type ToastExpiredMsg struct {
	ID int
}

// ClipboardMsg is sent after a clipboard write.
type ClipboardMsg struct {
	Text string
	Err  error
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Search runs req against searcher. The request travels with the result so
// the session can drop responses that are no longer current.
func Search(searcher search.Searcher, req search.Request, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		start := time.Now()
		if searcher == nil {
			return SearchResultMsg{Request: req, Err: fmt.Errorf("no searcher configured")}
		}
		res, err := searcher.Search(ctx, req.Query, req.Page)
		return SearchResultMsg{
			Request: req,
			Result:  res,
			Err:     err,
			Elapsed: time.Since(start),
		}
	}
}

// LoadPreview downloads the full-size image shown in the modal.
func LoadPreview(fetcher ImageFetcher, url string) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return PreviewLoadedMsg{URL: url, Err: fmt.Errorf("no image fetcher configured")}
		}
		img, err := fetcher.Fetch(context.Background(), url)
		if err != nil {
			return PreviewLoadedMsg{URL: url, Err: fmt.Errorf("loading preview: %w", err)}
		}
		return PreviewLoadedMsg{URL: url, Image: img}
	}
}

// LoadThumbnail downloads a gallery thumbnail and renders it into cols x rows cells.
func LoadThumbnail(fetcher ImageFetcher, id int64, url string, cols, rows int) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil || url == "" {
			return ThumbnailLoadedMsg{ID: id, Err: fmt.Errorf("thumbnail unavailable")}
		}
		img, err := fetcher.Fetch(context.Background(), url)
		if err != nil {
			return ThumbnailLoadedMsg{ID: id, Err: err}
		}
		return ThumbnailLoadedMsg{ID: id, Art: preview.Render(img, cols, rows)}
	}
}

// ExpireToast fires ToastExpiredMsg for id after d.
func ExpireToast(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ClipboardMsg{Text: text, Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return ClipboardMsg{Text: text}
	}
}

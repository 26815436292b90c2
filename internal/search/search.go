// Package search holds the image search session: the state a user builds up
// while querying, paging through results, and previewing an image.
package search

import (
	"context"
)

// LoadMoreThreshold is the number of accumulated images at which the
// load-more control becomes visible.
const LoadMoreThreshold = 12

// User-facing notification messages.
const (
	MsgNoResults     = "Sorry, there are no images matching your search query. Please try again."
	MsgRequestFailed = "Something went wrong. Try again."
)

// Image is one search hit.
type Image struct {
	ID           int64
	ThumbnailURL string // small preview, ~150px
	WebURL       string // medium size, ~640px
	LargeURL     string // full-size image shown in the preview
	PageURL      string
	Tags         string
	User         string
	Width        int
	Height       int
	Views        int
	Downloads    int
	Likes        int
}

// Result is one page of hits returned by a Searcher.
type Result struct {
	Hits           []Image
	TotalAvailable int
}

// Searcher performs a single search request for a query and 1-indexed page.
// Implementations make exactly one attempt per call.
type Searcher interface {
	Search(ctx context.Context, query string, page int) (Result, error)
}

// SearcherFunc adapts a function to the Searcher interface.
type SearcherFunc func(ctx context.Context, query string, page int) (Result, error)

// Search calls f.
func (f SearcherFunc) Search(ctx context.Context, query string, page int) (Result, error) {
	return f(ctx, query, page)
}

// Kind classifies a notification.
type Kind int

const (
	KindInfo Kind = iota
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// Notifier surfaces user-visible messages.
type Notifier interface {
	Notify(kind Kind, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(kind Kind, message string)

// Notify calls f.
func (f NotifierFunc) Notify(kind Kind, message string) {
	f(kind, message)
}

type discardNotifier struct{}

func (discardNotifier) Notify(Kind, string) {}

package search

import (
	"context"

	"github.com/rs/xid"
)

// Request identifies one fetch for a (query, page) pair.
type Request struct {
	ID    string // correlation id for logs
	Gen   uint64 // generation; only the latest generation may mutate the session
	Query string
	Page  int
}

// Outcome reports what Resolve did with a response.
type Outcome int

const (
	OutcomeAppended Outcome = iota
	OutcomeEmpty
	OutcomeFailed
	OutcomeStale
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAppended:
		return "appended"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	case OutcomeStale:
		return "stale"
	default:
		return "unknown"
	}
}

// State is a read-only copy of the session for rendering.
type State struct {
	Query            string
	Images           []Image
	Loading          bool
	Page             int
	SelectedImageURL string
	TotalAvailable   int
}

// ShowLoadMore reports whether the load-more control is rendered.
func (s State) ShowLoadMore() bool {
	return len(s.Images) >= LoadMoreThreshold
}

// ShowModal reports whether the preview modal is rendered.
func (s State) ShowModal() bool {
	return s.SelectedImageURL != ""
}

// Session owns the state for one query-and-pagination lifecycle.
//
// All mutation goes through its methods. A Session is not safe for concurrent
// use; it belongs to the UI loop that drives it.
type Session struct {
	query    string
	images   []Image
	loading  bool
	page     int
	selected string
	total    int

	// last (query, page) pair the fetch trigger observed
	seenQuery string
	seenPage  int

	gen      uint64
	inflight bool
	seen     map[int64]struct{}

	dedupe   bool
	notifier Notifier
	newID    func() string
}

// Option configures a Session.
type Option func(*Session)

// WithDedupe drops hits whose ID was already shown for the current query.
func WithDedupe(enabled bool) Option {
	return func(s *Session) {
		s.dedupe = enabled
	}
}

// WithRequestIDs overrides request id generation.
func WithRequestIDs(fn func() string) Option {
	return func(s *Session) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewSession creates a session with mount defaults: empty query, no images,
// page 1, not loading, modal closed.
func NewSession(n Notifier, opts ...Option) *Session {
	if n == nil {
		n = discardNotifier{}
	}
	s := &Session{
		page:     1,
		seenPage: 1,
		notifier: n,
		seen:     make(map[int64]struct{}),
		newID:    func() string { return xid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit starts a new search. Submitting the current query again is a no-op.
// It reports whether the query changed.
func (s *Session) Submit(query string) bool {
	if query == s.query {
		return false
	}
	s.query = query
	s.images = nil
	s.page = 1
	s.total = 0
	s.seen = make(map[int64]struct{})
	return true
}

// LoadMore advances to the next page; the next Effect fetches it and its hits
// are appended to the current images.
func (s *Session) LoadMore() {
	s.page++
}

// Effect is the fetch trigger. It returns a Request when query or page changed
// since the last call, and the query is not empty. Unrelated state changes
// (loading, preview) never produce a request.
func (s *Session) Effect() (Request, bool) {
	if s.query == s.seenQuery && s.page == s.seenPage {
		return Request{}, false
	}
	s.seenQuery = s.query
	s.seenPage = s.page

	if s.query == "" {
		// A cleared query supersedes whatever was in flight.
		s.gen++
		s.inflight = false
		s.loading = false
		return Request{}, false
	}

	s.gen++
	s.inflight = true
	s.loading = true
	return Request{
		ID:    s.newID(),
		Gen:   s.gen,
		Query: s.query,
		Page:  s.page,
	}, true
}

// Resolve applies the response for req. Responses for anything but the latest
// request are dropped without touching state.
func (s *Session) Resolve(req Request, res Result, err error) Outcome {
	if req.Gen != s.gen || !s.inflight {
		return OutcomeStale
	}
	s.inflight = false
	s.loading = false

	if err != nil {
		s.notifier.Notify(KindError, MsgRequestFailed)
		return OutcomeFailed
	}

	s.total = res.TotalAvailable
	if len(res.Hits) == 0 {
		s.notifier.Notify(KindError, MsgNoResults)
		return OutcomeEmpty
	}

	added := 0
	for _, img := range res.Hits {
		if s.dedupe {
			if _, dup := s.seen[img.ID]; dup {
				continue
			}
			s.seen[img.ID] = struct{}{}
		}
		s.images = append(s.images, img)
		added++
	}
	// A page made only of images already shown adds nothing.
	if added == 0 {
		s.notifier.Notify(KindError, MsgNoResults)
		return OutcomeEmpty
	}
	return OutcomeAppended
}

// Run performs any due fetch synchronously. It reports whether a request was
// made and how it resolved.
func (s *Session) Run(ctx context.Context, searcher Searcher) (Outcome, bool) {
	req, ok := s.Effect()
	if !ok {
		return 0, false
	}
	res, err := searcher.Search(ctx, req.Query, req.Page)
	return s.Resolve(req, res, err), true
}

// OpenPreview shows url in the preview modal.
func (s *Session) OpenPreview(url string) {
	s.selected = url
}

// ClosePreview hides the preview modal.
func (s *Session) ClosePreview() {
	s.selected = ""
}

// Query returns the current search term.
func (s *Session) Query() string { return s.query }

// Page returns the current page number.
func (s *Session) Page() int { return s.page }

// Loading reports whether a fetch is in flight.
func (s *Session) Loading() bool { return s.loading }

// SelectedImageURL returns the previewed URL, empty when the modal is closed.
func (s *Session) SelectedImageURL() string { return s.selected }

// Len returns the number of accumulated images.
func (s *Session) Len() int { return len(s.images) }

// ShowLoadMore reports whether the load-more control is rendered.
func (s *Session) ShowLoadMore() bool { return len(s.images) >= LoadMoreThreshold }

// ShowModal reports whether the preview modal is rendered.
func (s *Session) ShowModal() bool { return s.selected != "" }

// Image returns the image at index i.
func (s *Session) Image(i int) (Image, bool) {
	if i < 0 || i >= len(s.images) {
		return Image{}, false
	}
	return s.images[i], true
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() State {
	images := make([]Image, len(s.images))
	copy(images, s.images)
	return State{
		Query:            s.query,
		Images:           images,
		Loading:          s.loading,
		Page:             s.page,
		SelectedImageURL: s.selected,
		TotalAvailable:   s.total,
	}
}

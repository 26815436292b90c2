package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/pixsearch/internal/search"
	"github.com/javiermolinar/pixsearch/internal/tui/commands"
)

func TestSubmit_FetchesFirstPageAndShowsLoadMore(t *testing.T) {
	s := &fakeSearcher{pages: map[string][]search.Result{
		"cats": {
			{Hits: hits("cats", 12, 0), TotalAvailable: 500},
			{Hits: hits("cats", 12, 12), TotalAvailable: 500},
		},
	}}
	m := newTestModel(s)

	m, cmd := submitQuery(m, "cats")
	if !m.session.Loading() {
		t.Fatalf("expected loading after submit")
	}
	if m.focus != focusGallery {
		t.Fatalf("focus = %s, want gallery", m.focus)
	}
	m = feed(m, cmd)

	if got := strings.Join(s.calls, ","); got != "cats/1" {
		t.Fatalf("calls = %q, want %q", got, "cats/1")
	}
	if m.session.Loading() {
		t.Fatalf("expected loading to end after the response")
	}
	if m.session.Len() != 12 {
		t.Fatalf("images = %d, want 12", m.session.Len())
	}
	if !m.session.ShowLoadMore() {
		t.Fatalf("expected load more at 12 images")
	}

	m, cmd = press(m, "m")
	if m.session.Page() != 2 {
		t.Fatalf("page = %d, want 2", m.session.Page())
	}
	m = feed(m, cmd)

	if got := strings.Join(s.calls, ","); got != "cats/1,cats/2" {
		t.Fatalf("calls = %q", got)
	}
	if m.session.Len() != 24 {
		t.Fatalf("images = %d, want 24", m.session.Len())
	}
	if img, _ := m.session.Image(12); img.ID != 13 {
		t.Fatalf("image[12].ID = %d, want 13", img.ID)
	}
}

func TestSubmit_EmptyQueryIsRejected(t *testing.T) {
	s := &fakeSearcher{}
	m := newTestModel(s)

	m, cmd := submitQuery(m, "   ")

	if m.toasts.Len() != 1 {
		t.Fatalf("toasts = %d, want 1", m.toasts.Len())
	}
	if got := m.toasts.Items()[0].Message; got != emptyQueryMessage {
		t.Fatalf("toast = %q, want %q", got, emptyQueryMessage)
	}
	if m.focus != focusSearch {
		t.Fatalf("focus = %s, want search", m.focus)
	}
	if m.session.Loading() {
		t.Fatalf("expected no request for an empty query")
	}

	m = feed(m, cmd)
	if len(s.calls) != 0 {
		t.Fatalf("unexpected search calls: %v", s.calls)
	}
	if m.toasts.Len() != 0 {
		t.Fatalf("expected toast to expire, got %d", m.toasts.Len())
	}
}

func TestSubmit_SameQueryDoesNotRefetch(t *testing.T) {
	s := &fakeSearcher{pages: map[string][]search.Result{
		"cats": {{Hits: hits("cats", 3, 0)}},
	}}
	m := newTestModel(s)

	m, cmd := submitQuery(m, "cats")
	m = feed(m, cmd)
	m, cmd = submitQuery(m, "cats")

	if len(searchResults(drain(cmd))) != 0 {
		t.Fatalf("expected no request when the query is unchanged")
	}
	if m.session.Len() != 3 {
		t.Fatalf("images = %d, want 3", m.session.Len())
	}
}

func TestSubmit_NewQueryReplacesImages(t *testing.T) {
	s := &fakeSearcher{pages: map[string][]search.Result{
		"cats": {{Hits: hits("cats", 12, 0)}},
		"dogs": {{Hits: hits("dogs", 2, 100)}},
	}}
	m := newTestModel(s)

	m, cmd := submitQuery(m, "cats")
	m = feed(m, cmd)
	m.cursor = 5
	m, cmd = submitQuery(m, "dogs")

	if m.session.Len() != 0 {
		t.Fatalf("expected images cleared on a new query, got %d", m.session.Len())
	}
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}
	m = feed(m, cmd)
	if m.session.Len() != 2 || m.session.Page() != 1 {
		t.Fatalf("images = %d page = %d, want 2 and 1", m.session.Len(), m.session.Page())
	}
	if m.session.ShowLoadMore() {
		t.Fatalf("expected load more hidden below the threshold")
	}
}

func TestLoadMore_HiddenBelowThreshold(t *testing.T) {
	s := &fakeSearcher{pages: map[string][]search.Result{
		"cats": {{Hits: hits("cats", 11, 0)}},
	}}
	m := newTestModel(s)

	m, cmd := submitQuery(m, "cats")
	m = feed(m, cmd)
	m, cmd = press(m, "m")

	if m.session.Page() != 1 {
		t.Fatalf("page = %d, want 1", m.session.Page())
	}
	if cmd != nil {
		t.Fatalf("expected no command")
	}
}

func TestLoadMore_IgnoredWhileLoading(t *testing.T) {
	s := &fakeSearcher{pages: map[string][]search.Result{
		"cats": {{Hits: hits("cats", 12, 0)}, {Hits: hits("cats", 12, 12)}},
	}}
	m := newTestModel(s)

	m, cmd := submitQuery(m, "cats")
	m = feed(m, cmd)

	m, _ = press(m, "m")
	m, cmd = press(m, "m")

	if m.session.Page() != 2 {
		t.Fatalf("page = %d, want 2", m.session.Page())
	}
	if cmd != nil {
		t.Fatalf("expected second press to be ignored")
	}
}

func TestSearchResult_StaleResponseIsDropped(t *testing.T) {
	s := &fakeSearcher{pages: map[string][]search.Result{
		"cats": {{Hits: hits("cats", 12, 0)}},
		"dogs": {{Hits: hits("dogs", 4, 100)}},
	}}
	m := newTestModel(s)

	m, catsCmd := submitQuery(m, "cats")
	m, dogsCmd := submitQuery(m, "dogs")

	// The dogs response lands first; the late cats response must not
	// overwrite it.
	m = feed(m, dogsCmd)
	m = feed(m, catsCmd)

	if m.session.Len() != 4 {
		t.Fatalf("images = %d, want 4", m.session.Len())
	}
	if img, _ := m.session.Image(0); img.ID != 101 {
		t.Fatalf("image[0].ID = %d, want 101", img.ID)
	}
	if m.session.Loading() {
		t.Fatalf("expected loading cleared")
	}
}

func TestSearchResult_FailureShowsErrorToast(t *testing.T) {
	s := &fakeSearcher{err: errBoom}
	m := newTestModel(s)

	m, cmd := submitQuery(m, "cats")
	results := searchResults(drain(cmd))
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	updated, expire := m.Update(results[0])
	m = updated.(Model)

	if m.session.Loading() {
		t.Fatalf("expected loading cleared after failure")
	}
	if m.session.Len() != 0 {
		t.Fatalf("images = %d, want 0", m.session.Len())
	}
	items := m.toasts.Items()
	if len(items) != 1 || items[0].Kind != search.KindError || items[0].Message != search.MsgRequestFailed {
		t.Fatalf("unexpected toasts: %+v", items)
	}
	if !strings.Contains(m.View(), search.MsgRequestFailed[:20]) {
		t.Fatalf("expected toast in view")
	}

	m = feed(m, expire)
	if m.toasts.Len() != 0 {
		t.Fatalf("expected toast dismissed after expiry")
	}
}

func TestSearchResult_NoHitsShowsToast(t *testing.T) {
	s := &fakeSearcher{pages: map[string][]search.Result{}}
	m := newTestModel(s)

	m, cmd := submitQuery(m, "zzzzqqq")
	results := searchResults(drain(cmd))
	updated, _ := m.Update(results[0])
	m = updated.(Model)

	items := m.toasts.Items()
	if len(items) != 1 || items[0].Message != search.MsgNoResults {
		t.Fatalf("unexpected toasts: %+v", items)
	}
	if m.session.Len() != 0 || m.session.ShowLoadMore() {
		t.Fatalf("expected empty gallery without load more")
	}
}

func TestSearchResult_LoadsThumbnails(t *testing.T) {
	s := &fakeSearcher{pages: map[string][]search.Result{
		"cats": {{Hits: hits("cats", 2, 0)}},
	}}
	f := &fakeFetcher{}
	m := newTestModel(s, WithFetcher(f))

	m, cmd := submitQuery(m, "cats")
	results := searchResults(drain(cmd))
	updated, thumbCmd := m.Update(results[0])
	m = updated.(Model)
	m = feed(m, thumbCmd)

	if len(f.urls) != 2 || f.urls[0] != "https://cdn.example.com/1_150.jpg" {
		t.Fatalf("fetched = %v", f.urls)
	}
	if len(m.thumbs[1]) == 0 || len(m.thumbs[2]) == 0 {
		t.Fatalf("expected thumbnails stored, got %v", m.thumbs)
	}
	if len(m.thumbPending) != 0 {
		t.Fatalf("expected no pending thumbnails")
	}
}

func TestThumbnailForReplacedQueryIsIgnored(t *testing.T) {
	m := newTestModel(&fakeSearcher{})
	updated, _ := m.Update(commands.ThumbnailLoadedMsg{ID: 42})
	m = updated.(Model)

	if _, ok := m.thumbs[42]; ok {
		t.Fatalf("expected thumbnail without a pending request to be dropped")
	}
}

func TestPreview_OpenAndClose(t *testing.T) {
	s := &fakeSearcher{pages: map[string][]search.Result{
		"cats": {{Hits: hits("cats", 3, 0)}},
	}}
	f := &fakeFetcher{}
	m := newTestModel(s, WithFetcher(f))

	m, cmd := submitQuery(m, "cats")
	m = feed(m, cmd)
	m, _ = press(m, "l")
	m, cmd = press(m, "enter")

	want := "https://cdn.example.com/2_1280.jpg"
	if got := m.session.SelectedImageURL(); got != want {
		t.Fatalf("selected = %q, want %q", got, want)
	}
	if !m.session.ShowModal() || !m.previewLoading {
		t.Fatalf("expected modal open and loading")
	}
	m = feed(m, cmd)
	if m.previewLoading || m.previewArt.Empty() {
		t.Fatalf("expected preview art rendered")
	}
	if !strings.Contains(m.View(), "cats, animal") {
		t.Fatalf("expected preview title in view")
	}

	m, _ = press(m, "esc")
	if m.session.ShowModal() || m.session.SelectedImageURL() != "" {
		t.Fatalf("expected modal closed")
	}
	if !m.previewArt.Empty() {
		t.Fatalf("expected preview state reset")
	}
}

func TestPreview_LateImageAfterCloseIsIgnored(t *testing.T) {
	s := &fakeSearcher{pages: map[string][]search.Result{
		"cats": {{Hits: hits("cats", 1, 0)}},
	}}
	m := newTestModel(s, WithFetcher(&fakeFetcher{}))

	m, cmd := submitQuery(m, "cats")
	m = feed(m, cmd)
	m, cmd = press(m, "enter")
	m, _ = press(m, "esc")
	m = feed(m, cmd)

	if m.previewImg != nil || m.session.ShowModal() {
		t.Fatalf("expected late preview to be dropped")
	}
}

func TestPreview_FetchErrorShownInModal(t *testing.T) {
	s := &fakeSearcher{pages: map[string][]search.Result{
		"cats": {{Hits: hits("cats", 1, 0)}},
	}}
	m := newTestModel(s, WithFetcher(&fakeFetcher{err: errBoom}))

	m, cmd := submitQuery(m, "cats")
	m = feed(m, cmd)
	m, cmd = press(m, "enter")
	m = feed(m, cmd)

	if m.previewErr == nil {
		t.Fatalf("expected preview error")
	}
	if !strings.Contains(m.View(), "Could not load preview") {
		t.Fatalf("expected error in modal")
	}
	if !m.session.ShowModal() {
		t.Fatalf("expected modal to stay open")
	}
}

func TestPreview_ModalCapturesKeys(t *testing.T) {
	s := &fakeSearcher{pages: map[string][]search.Result{
		"cats": {{Hits: hits("cats", 12, 0)}},
	}}
	m := newTestModel(s)

	m, cmd := submitQuery(m, "cats")
	m = feed(m, cmd)
	m, _ = press(m, "enter")
	if !m.session.ShowModal() {
		t.Fatalf("expected modal open")
	}

	m, cmd = press(m, "m")
	if m.session.Page() != 1 || cmd != nil {
		t.Fatalf("expected load more blocked while the modal is open")
	}
	m, cmd = press(m, "q")
	if m.session.ShowModal() {
		t.Fatalf("expected q to close the modal")
	}
	if cmd != nil {
		t.Fatalf("expected q to close the modal without quitting")
	}
}

func TestPreview_CopyURL(t *testing.T) {
	s := &fakeSearcher{pages: map[string][]search.Result{
		"cats": {{Hits: hits("cats", 1, 0)}},
	}}
	m := newTestModel(s)

	m, cmd := submitQuery(m, "cats")
	m = feed(m, cmd)
	m, _ = press(m, "enter")

	updated, _ := m.Update(commands.ClipboardMsg{Text: m.session.SelectedImageURL()})
	m = updated.(Model)
	if items := m.toasts.Items(); len(items) != 1 || items[0].Message != copiedMessage {
		t.Fatalf("unexpected toasts: %+v", items)
	}

	updated, _ = m.Update(commands.ClipboardMsg{Err: errBoom})
	m = updated.(Model)
	if items := m.toasts.Items(); len(items) != 2 || items[1].Kind != search.KindError {
		t.Fatalf("unexpected toasts: %+v", items)
	}
}

func TestSpinnerTick_IgnoredWhenIdle(t *testing.T) {
	m := newTestModel(&fakeSearcher{})

	_, cmd := m.Update(spinner.TickMsg{})
	if cmd != nil {
		t.Fatalf("expected no follow-up tick while idle")
	}
}

func TestSpinnerTick_AdvancesWhileLoading(t *testing.T) {
	s := &fakeSearcher{}
	m := newTestModel(s)
	m, _ = submitQuery(m, "cats")

	_, cmd := m.Update(spinner.TickMsg{})
	if cmd == nil {
		t.Fatalf("expected the spinner to keep ticking while loading")
	}
}

func TestWindowSize_UpdatesInputWidth(t *testing.T) {
	m := *New(&fakeSearcher{}, testConfig())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = updated.(Model)

	if m.width != 80 || m.height != 30 {
		t.Fatalf("size = %dx%d, want 80x30", m.width, m.height)
	}
	if m.input.Width != m.layout().InputW {
		t.Fatalf("input width = %d, want %d", m.input.Width, m.layout().InputW)
	}
}

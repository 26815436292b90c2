package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/javiermolinar/pixsearch/internal/config"
	"github.com/javiermolinar/pixsearch/internal/search"
)

func init() {
	DisableColor()
}

func testHits(n, offset int) []search.Image {
	out := make([]search.Image, 0, n)
	for i := 0; i < n; i++ {
		id := int64(offset + i + 1)
		out = append(out, search.Image{
			ID:       id,
			Tags:     "cat, pet",
			User:     "alice",
			Width:    640,
			Height:   480,
			Likes:    3,
			LargeURL: fmt.Sprintf("https://cdn.example.com/%d_1280.jpg", id),
		})
	}
	return out
}

type recordingSearcher struct {
	pages []search.Result
	err   error
	calls []int
}

func (r *recordingSearcher) Search(_ context.Context, _ string, page int) (search.Result, error) {
	r.calls = append(r.calls, page)
	if r.err != nil {
		return search.Result{}, r.err
	}
	if page > len(r.pages) {
		return search.Result{}, nil
	}
	return r.pages[page-1], nil
}

func runCLI(t *testing.T, s search.Searcher, args ...string) (string, string, error) {
	t.Helper()
	app := NewApp(WithConfig(config.Default()), WithSearcher(s), WithFetcher(nil))
	var stdout, stderr bytes.Buffer
	app.root.SetOut(&stdout)
	app.root.SetErr(&stderr)
	app.root.SetArgs(args)
	err := app.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSearchCmd_PrintsResults(t *testing.T) {
	s := &recordingSearcher{pages: []search.Result{{Hits: testHits(3, 0), TotalAvailable: 40}}}

	out, _, err := runCLI(t, s, "search", "cats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `Results for "cats" (page 1, 3 of 40 images)`) {
		t.Fatalf("missing header:\n%s", out)
	}
	if strings.Count(out, "cat, pet") != 3 {
		t.Fatalf("expected three result lines:\n%s", out)
	}
	if !strings.Contains(out, "https://cdn.example.com/2_1280.jpg") {
		t.Fatalf("expected image URL:\n%s", out)
	}
}

func TestSearchCmd_MultiplePagesFollowThreshold(t *testing.T) {
	s := &recordingSearcher{pages: []search.Result{
		{Hits: testHits(12, 0)},
		{Hits: testHits(5, 12)},
		{Hits: testHits(12, 17)},
	}}

	out, _, err := runCLI(t, s, "search", "cats", "--pages", "3", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Page 2 fills 17 images, still above the threshold, so page 3 is fetched.
	if got := fmt.Sprint(s.calls); got != "[1 2 3]" {
		t.Fatalf("calls = %s, want [1 2 3]", got)
	}
	var res jsonResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if res.Query != "cats" || res.Page != 3 || len(res.Images) != 29 {
		t.Fatalf("unexpected result: query=%q page=%d images=%d", res.Query, res.Page, len(res.Images))
	}
}

func TestSearchCmd_StopsBelowThreshold(t *testing.T) {
	s := &recordingSearcher{pages: []search.Result{{Hits: testHits(4, 0)}, {Hits: testHits(12, 4)}}}

	if _, _, err := runCLI(t, s, "search", "cats", "--pages", "2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.calls) != 1 {
		t.Fatalf("calls = %v, want one request", s.calls)
	}
}

func TestSearchCmd_StartPage(t *testing.T) {
	s := &recordingSearcher{pages: []search.Result{{Hits: testHits(12, 0)}, {Hits: testHits(2, 12)}}}

	out, _, err := runCLI(t, s, "search", "cats", "--page", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fmt.Sprint(s.calls) != "[2]" {
		t.Fatalf("calls = %v, want [2]", s.calls)
	}
	if !strings.Contains(out, "page 2") {
		t.Fatalf("expected page 2 in header:\n%s", out)
	}
}

func TestSearchCmd_NoResultsNotice(t *testing.T) {
	s := &recordingSearcher{}

	out, errOut, err := runCLI(t, s, "search", "zzzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
	if !strings.Contains(errOut, search.MsgNoResults) {
		t.Fatalf("expected notice on stderr, got %q", errOut)
	}
}

func TestSearchCmd_FailureReturnsError(t *testing.T) {
	s := &recordingSearcher{err: errors.New("dial tcp: refused")}

	_, errOut, err := runCLI(t, s, "search", "cats")
	if !errors.Is(err, errSearchFailed) {
		t.Fatalf("err = %v, want errSearchFailed", err)
	}
	if !strings.Contains(errOut, "error: "+search.MsgRequestFailed) {
		t.Fatalf("expected notification on stderr, got %q", errOut)
	}
}

func TestSearchCmd_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "blank_query", args: []string{"search", "   "}},
		{name: "zero_page", args: []string{"search", "cats", "--page", "0"}},
		{name: "zero_pages", args: []string{"search", "cats", "--pages", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &recordingSearcher{}
			if _, _, err := runCLI(t, s, tt.args...); err == nil {
				t.Fatalf("expected an error")
			}
			if len(s.calls) != 0 {
				t.Fatalf("expected no requests, got %v", s.calls)
			}
		})
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := runCLI(t, &recordingSearcher{}, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "pixsearch "+Version) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSetup_RequiresAPIKey(t *testing.T) {
	app := NewApp(WithConfig(config.Default()))
	if err := app.setup(); !errors.Is(err, errNoAPIKey) {
		t.Fatalf("err = %v, want errNoAPIKey", err)
	}
}

func TestSetup_BuildsClient(t *testing.T) {
	cfg := config.Default()
	cfg.API.Key = "secret"
	app := NewApp(WithConfig(cfg))

	if err := app.setup(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.searcher == nil || app.fetcher == nil {
		t.Fatalf("expected searcher and fetcher to be built")
	}
}

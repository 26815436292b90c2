package tui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/pixsearch/internal/config"
	"github.com/javiermolinar/pixsearch/internal/search"
	"github.com/javiermolinar/pixsearch/internal/tui/commands"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// fakeSearcher answers from a per-query list of pages.
type fakeSearcher struct {
	pages map[string][]search.Result
	err   error
	calls []string
}

func (f *fakeSearcher) Search(_ context.Context, query string, page int) (search.Result, error) {
	f.calls = append(f.calls, fmt.Sprintf("%s/%d", query, page))
	if f.err != nil {
		return search.Result{}, f.err
	}
	pages := f.pages[query]
	if page < 1 || page > len(pages) {
		return search.Result{}, nil
	}
	return pages[page-1], nil
}

type fakeFetcher struct {
	err  error
	urls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (image.Image, error) {
	f.urls = append(f.urls, url)
	if f.err != nil {
		return nil, f.err
	}
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	return img, nil
}

var errBoom = errors.New("boom")

func testConfig() *config.Config {
	cfg := config.Default()
	// Keep toast expiry ticks short so drained commands return promptly.
	cfg.UI.ToastMS = 1
	return cfg
}

func hits(query string, n, offset int) []search.Image {
	out := make([]search.Image, 0, n)
	for i := 0; i < n; i++ {
		id := int64(offset + i + 1)
		out = append(out, search.Image{
			ID:           id,
			ThumbnailURL: fmt.Sprintf("https://cdn.example.com/%d_150.jpg", id),
			WebURL:       fmt.Sprintf("https://cdn.example.com/%d_640.jpg", id),
			LargeURL:     fmt.Sprintf("https://cdn.example.com/%d_1280.jpg", id),
			Tags:         query + ", animal",
			User:         "photographer",
			Width:        1920,
			Height:       1080,
			Likes:        7,
		})
	}
	return out
}

func newTestModel(s search.Searcher, opts ...ModelOption) Model {
	m := *New(s, testConfig(), opts...)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

// drain runs cmd and every command batched inside it, returning the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func searchResults(msgs []tea.Msg) []commands.SearchResultMsg {
	var out []commands.SearchResultMsg
	for _, msg := range msgs {
		if r, ok := msg.(commands.SearchResultMsg); ok {
			out = append(out, r)
		}
	}
	return out
}

// feed applies every message produced by cmd and returns the final model.
func feed(m Model, cmd tea.Cmd) Model {
	for _, msg := range drain(cmd) {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, c := m.Update(msg)
		m = updated.(Model)
		cmd = c
	}
	return m, cmd
}

func submitQuery(m Model, query string) (Model, tea.Cmd) {
	m.setFocus(focusSearch, "test")
	m.input.SetValue(query)
	return press(m, "enter")
}

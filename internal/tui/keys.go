package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/pixsearch/internal/preview"
	"github.com/javiermolinar/pixsearch/internal/search"
	"github.com/javiermolinar/pixsearch/internal/tui/commands"
)

// KeyMap defines all keyboard bindings for the application.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding

	// Search form
	Submit      key.Binding
	FocusSearch key.Binding
	Blur        key.Binding
	ToggleFocus key.Binding

	// Gallery
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Open     key.Binding
	LoadMore key.Binding

	// Modal
	Close   key.Binding
	CopyURL key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "to gallery"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "right"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "preview"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "load more"),
		),

		Close: key.NewBinding(
			key.WithKeys("esc", "q", "enter"),
			key.WithHelp("esc", "close"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy url"),
		),
	}
}

// contextHelp adapts the bindings relevant to the current focus to help.KeyMap.
type contextHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (c contextHelp) ShortHelp() []key.Binding  { return c.short }
func (c contextHelp) FullHelp() [][]key.Binding { return c.full }

// helpKeys returns the bindings shown in the footer.
func (m Model) helpKeys() contextHelp {
	k := m.keys
	switch {
	case m.session.ShowModal():
		return contextHelp{
			short: []key.Binding{k.Close, k.CopyURL, k.ForceQuit},
			full:  [][]key.Binding{{k.Close, k.CopyURL}, {k.ForceQuit}},
		}
	case m.focus == focusSearch:
		return contextHelp{
			short: []key.Binding{k.Submit, k.Blur, k.ToggleFocus, k.ForceQuit},
			full:  [][]key.Binding{{k.Submit, k.Blur, k.ToggleFocus}, {k.ForceQuit}},
		}
	default:
		short := []key.Binding{k.Up, k.Down, k.Open, k.FocusSearch}
		if m.canLoadMore() {
			short = append(short, k.LoadMore)
		}
		short = append(short, k.Help, k.Quit)
		return contextHelp{
			short: short,
			full: [][]key.Binding{
				{k.Up, k.Down, k.Left, k.Right},
				{k.Top, k.Bottom},
				{k.Open, k.LoadMore, k.FocusSearch, k.ToggleFocus},
				{k.Help, k.Quit},
			},
		}
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg, m.statusLine())

	// Global keys (work in all modes)
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// The modal captures input while open.
	if m.session.ShowModal() {
		return m.handleModalKeys(msg)
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKeys(msg)
	default:
		return m.handleGalleryKeys(msg)
	}
}

// handleSearchKeys handles keys while the search form has focus.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Blur), key.Matches(msg, m.keys.ToggleFocus):
		m.setFocus(focusGallery, msg.String())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands the trimmed input to the session. Empty input is rejected
// here and never reaches the session.
func (m Model) submit() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.toasts.Push(search.KindInfo, emptyQueryMessage)
		return m, m.toastCmds()
	}

	if m.session.Submit(query) {
		m.cursor = 0
		m.scrollRow = 0
		m.thumbs = make(map[int64][]string)
		m.thumbPending = make(map[int64]bool)
	}
	m.setFocus(focusGallery, "submit")
	return m, m.effect()
}

// handleGalleryKeys handles keys while the gallery has focus.
func (m Model) handleGalleryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.galleryColumns()
	n := m.session.Len()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.FocusSearch), key.Matches(msg, m.keys.ToggleFocus):
		m.setFocus(focusSearch, msg.String())
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-cols)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(cols)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-n)
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(n)
	case key.Matches(msg, m.keys.Open):
		return m.openPreview()
	case key.Matches(msg, m.keys.LoadMore):
		if !m.canLoadMore() {
			return m, nil
		}
		m.session.LoadMore()
		return m, m.effect()
	}
	return m, nil
}

// handleModalKeys handles keys while the preview modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.closePreview()
	case key.Matches(msg, m.keys.CopyURL):
		return m, commands.CopyToClipboard(m.session.SelectedImageURL())
	}
	return m, nil
}

// canLoadMore reports whether the load-more control is visible and usable.
// The button is hidden below the threshold; while a page is loading it stays
// visible but presses are ignored.
func (m Model) canLoadMore() bool {
	return m.session.ShowLoadMore() && !m.session.Loading()
}

func (m *Model) setFocus(to focus, reason string) {
	if m.focus == to {
		return
	}
	LogFocusChange(m.focus, to, reason)
	m.focus = to
	if to == focusSearch {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

func (m *Model) moveCursor(delta int) {
	n := m.session.Len()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	m.ensureCursorVisible()
}

func (m Model) openPreview() (tea.Model, tea.Cmd) {
	img, ok := m.session.Image(m.cursor)
	if !ok {
		return m, nil
	}
	url := img.LargeURL
	if url == "" {
		url = img.WebURL
	}
	if url == "" {
		return m, nil
	}

	m.session.OpenPreview(url)
	m.previewURL = url
	m.previewImg = nil
	m.previewArt = preview.Art{}
	m.previewErr = nil
	if m.fetcher == nil {
		m.previewErr = errPreviewUnavailable
		return m, nil
	}
	m.previewLoading = true
	return m, tea.Batch(commands.LoadPreview(m.fetcher, url), m.spinner.Tick)
}

func (m *Model) closePreview() {
	m.session.ClosePreview()
	m.previewURL = ""
	m.previewImg = nil
	m.previewArt = preview.Art{}
	m.previewErr = nil
	m.previewLoading = false
}

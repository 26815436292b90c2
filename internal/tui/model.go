package tui

import (
	"image"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/pixsearch/internal/config"
	"github.com/javiermolinar/pixsearch/internal/preview"
	"github.com/javiermolinar/pixsearch/internal/search"
	"github.com/javiermolinar/pixsearch/internal/tui/commands"
	"github.com/javiermolinar/pixsearch/internal/tui/theme"
)

// focus identifies which component receives keys.
type focus int

const (
	focusSearch focus = iota
	focusGallery
)

func (f focus) String() string {
	switch f {
	case focusSearch:
		return "search"
	case focusGallery:
		return "gallery"
	default:
		return "unknown"
	}
}

// Thumbnail size in terminal cells.
const (
	thumbCols = 22
	thumbRows = 6
)

const emptyQueryMessage = "Please enter a search query."

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config   *config.Config
	searcher search.Searcher
	fetcher  commands.ImageFetcher

	// Search state; the session owns query, images, page, loading and the
	// previewed URL.
	session *search.Session
	toasts  *ToastStack

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Components
	keys    KeyMap
	help    help.Model
	input   textinput.Model
	spinner spinner.Model
	overlay OverlayModel

	// UI state
	focus     focus
	cursor    int // selected gallery index
	scrollRow int // first visible gallery row

	// Thumbnails keyed by image id
	thumbs       map[int64][]string
	thumbPending map[int64]bool

	// Preview modal
	previewURL     string
	previewImg     image.Image
	previewArt     preview.Art
	previewErr     error
	previewLoading bool

	// Timing
	requestTimeout time.Duration
	toastTTL       time.Duration // error toasts
	infoTTL        time.Duration

	// Terminal dimensions
	width  int
	height int
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithFetcher sets the image fetcher used for thumbnails and previews.
func WithFetcher(f commands.ImageFetcher) ModelOption {
	return func(m *Model) {
		m.fetcher = f
	}
}

// New creates a new TUI model.
func New(searcher search.Searcher, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "Search images and photos"
	ti.Prompt = "⌕ "
	ti.CharLimit = 100
	ti.PromptStyle = styles.SearchPromptStyle
	ti.TextStyle = styles.SearchTextStyle
	ti.PlaceholderStyle = styles.SearchPlaceholderStyle
	ti.Cursor.Style = styles.SearchCursorStyle
	ti.Cursor.TextStyle = styles.SearchTextStyle
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = styles.SpinnerStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.ShortSeparator = styles.HelpSepStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle
	h.Styles.FullSeparator = styles.HelpSepStyle

	timeout, err := cfg.RequestTimeout()
	if err != nil {
		timeout = 10 * time.Second
	}

	toasts := NewToastStack()
	m := &Model{
		config:         cfg,
		searcher:       searcher,
		session:        search.NewSession(toasts, search.WithDedupe(cfg.Search.Dedupe)),
		toasts:         toasts,
		theme:          t,
		styles:         styles,
		keys:           DefaultKeyMap(),
		help:           h,
		input:          ti,
		spinner:        sp,
		overlay:        NewOverlayModel(),
		focus:          focusSearch,
		thumbs:         make(map[int64][]string),
		thumbPending:   make(map[int64]bool),
		requestTimeout: timeout,
		toastTTL:       cfg.ToastDuration(),
		infoTTL:        cfg.InfoToastDuration(),
	}
	m.overlay.SetBackground(styles.ModalBgColor)

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Init initializes the model. Nothing is fetched on mount: the query starts
// empty and the first request follows the first submission.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Run starts the TUI.
func Run(searcher search.Searcher, cfg *config.Config, debug bool, opts ...ModelOption) error {
	path := ""
	if cfg != nil {
		path = cfg.Log.DebugPath
	}
	if err := InitDebugLogger(debug, path); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(searcher, cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

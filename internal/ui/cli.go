package ui

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/pixsearch/internal/config"
	"github.com/javiermolinar/pixsearch/internal/pixabay"
	"github.com/javiermolinar/pixsearch/internal/preview"
	"github.com/javiermolinar/pixsearch/internal/search"
	"github.com/javiermolinar/pixsearch/internal/tui"
	"github.com/javiermolinar/pixsearch/internal/tui/commands"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

var errNoAPIKey = errors.New("no API key configured: set PIXABAY_API_KEY or run `pixsearch config`")

// App holds the CLI application state.
type App struct {
	config   *config.Config
	searcher search.Searcher
	fetcher  commands.ImageFetcher
	root     *cobra.Command
	debug    bool // Enable debug logging
}

// AppOption configures an App.
type AppOption func(*App)

// WithConfig uses cfg instead of loading the config file.
func WithConfig(cfg *config.Config) AppOption {
	return func(a *App) {
		a.config = cfg
	}
}

// WithSearcher uses s instead of the Pixabay client.
func WithSearcher(s search.Searcher) AppOption {
	return func(a *App) {
		a.searcher = s
	}
}

// WithFetcher uses f to download thumbnails and previews.
func WithFetcher(f commands.ImageFetcher) AppOption {
	return func(a *App) {
		a.fetcher = f
	}
}

// NewApp creates a new CLI application.
func NewApp(opts ...AppOption) *App {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "pixsearch",
		Short: "Search Pixabay images from the terminal",
		Long: `pixsearch is a terminal client for the Pixabay image search API.

Type a query, browse the results as a grid of thumbnails, load more
pages and open any image in a full-size preview.`,
		SilenceUsage: true,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.searcher, a.config, a.debug, tui.WithFetcher(a.fetcher))
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to pixsearch-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.searchCmd())

	return a
}

// setup loads .env and the config file, then builds the API client.
func (a *App) setup() error {
	// Load .env file if present (ignore errors)
	_ = godotenv.Load()

	if a.config == nil {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	}

	userAgent := "pixsearch/" + Version
	if a.searcher == nil {
		if !a.config.HasAPIKey() {
			return errNoAPIKey
		}
		timeout, err := a.config.RequestTimeout()
		if err != nil {
			return err
		}
		client, err := pixabay.NewClient(pixabay.Options{
			BaseURL:     a.config.API.BaseURL,
			Key:         a.config.API.Key,
			PerPage:     a.config.API.PerPage,
			ImageType:   a.config.API.ImageType,
			Orientation: a.config.API.Orientation,
			SafeSearch:  a.config.API.SafeSearch,
			Timeout:     timeout,
			UserAgent:   userAgent,
		})
		if err != nil {
			return fmt.Errorf("creating client: %w", err)
		}
		a.searcher = client
	}
	if a.fetcher == nil {
		a.fetcher = preview.NewFetcher(userAgent)
	}
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pixsearch %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Root returns the root command, for callers that wrap execution.
func (a *App) Root() *cobra.Command {
	return a.root
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

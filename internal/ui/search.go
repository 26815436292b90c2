package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/pixsearch/internal/logger"
	"github.com/javiermolinar/pixsearch/internal/search"
)

var (
	errEmptyQuery   = errors.New("search query is empty")
	errSearchFailed = errors.New("search request failed")
)

// searchOptions holds the flags of the search command.
type searchOptions struct {
	page  int
	pages int
	json  bool
}

// jsonImage is the --json shape of one hit.
type jsonImage struct {
	ID        int64  `json:"id"`
	Tags      string `json:"tags"`
	User      string `json:"user,omitempty"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Likes     int    `json:"likes"`
	Thumbnail string `json:"thumbnail_url,omitempty"`
	Web       string `json:"web_url,omitempty"`
	Large     string `json:"large_url,omitempty"`
	Page      string `json:"page_url,omitempty"`
}

type jsonResult struct {
	Query          string      `json:"query"`
	Page           int         `json:"page"`
	TotalAvailable int         `json:"total_available"`
	Images         []jsonImage `json:"images"`
}

func (a *App) searchCmd() *cobra.Command {
	opts := searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search images without the interactive UI",
		Long: `Run a search and print the results.

Pages are fetched the same way the interactive gallery loads them: one
request per page, and a next page only while the previous one filled
the load-more threshold.`,
		Example: `  pixsearch search cats
  pixsearch search "mountain lake" --pages 3
  pixsearch search sunset --page 2 --json`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.debug {
				logger.SetOutput(cmd.ErrOrStderr(), zerolog.DebugLevel)
			}
			query := strings.TrimSpace(strings.Join(args, " "))
			return a.runSearch(cmd, query, opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", 1, "First page to fetch")
	cmd.Flags().IntVar(&opts.pages, "pages", 1, "Number of pages to fetch")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print results as JSON")

	return cmd
}

func (a *App) runSearch(cmd *cobra.Command, query string, opts searchOptions) error {
	if query == "" {
		return errEmptyQuery
	}
	if opts.page < 1 {
		return fmt.Errorf("--page must be at least 1, got %d", opts.page)
	}
	if opts.pages < 1 {
		return fmt.Errorf("--pages must be at least 1, got %d", opts.pages)
	}

	log := logger.New("search")
	stderr := cmd.ErrOrStderr()
	notifier := search.NotifierFunc(func(kind search.Kind, message string) {
		fmt.Fprintln(stderr, notice(kind, message))
	})

	dedupe := true
	if a.config != nil {
		dedupe = a.config.Search.Dedupe
	}
	session := search.NewSession(notifier, search.WithDedupe(dedupe))
	session.Submit(query)
	for session.Page() < opts.page {
		session.LoadMore()
	}

	failed := false
	for i := 0; i < opts.pages; i++ {
		start := time.Now()
		outcome, ran := session.Run(cmd.Context(), a.searcher)
		if !ran {
			break
		}
		log.Debug().
			Str("query", session.Query()).
			Int("page", session.Page()).
			Stringer("outcome", outcome).
			Int("images", session.Len()).
			Dur("elapsed", time.Since(start)).
			Msg("page fetched")

		if outcome == search.OutcomeFailed {
			failed = true
			break
		}
		if outcome != search.OutcomeAppended || !session.ShowLoadMore() {
			break
		}
		if i < opts.pages-1 {
			session.LoadMore()
		}
	}

	snap := session.Snapshot()
	if opts.json {
		if err := writeJSON(cmd.OutOrStdout(), snap); err != nil {
			return err
		}
	} else if len(snap.Images) > 0 {
		writeResults(cmd.OutOrStdout(), snap, opts.page, termWidth())
	}

	if failed {
		return errSearchFailed
	}
	return nil
}

func writeResults(w io.Writer, s search.State, firstPage, width int) {
	fmt.Fprintln(w, resultsHeader(s, firstPage))
	fmt.Fprintln(w)
	for _, img := range s.Images {
		fmt.Fprintln(w, imageLine(img, width))
		fmt.Fprintln(w, imageURLLine(img, width))
	}
}

func writeJSON(w io.Writer, s search.State) error {
	out := jsonResult{
		Query:          s.Query,
		Page:           s.Page,
		TotalAvailable: s.TotalAvailable,
		Images:         make([]jsonImage, 0, len(s.Images)),
	}
	for _, img := range s.Images {
		out.Images = append(out.Images, jsonImage{
			ID:        img.ID,
			Tags:      img.Tags,
			User:      img.User,
			Width:     img.Width,
			Height:    img.Height,
			Likes:     img.Likes,
			Thumbnail: img.ThumbnailURL,
			Web:       img.WebURL,
			Large:     img.LargeURL,
			Page:      img.PageURL,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}

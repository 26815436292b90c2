package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/pixsearch/internal/search"
)

// minLineWidth is the narrowest layout the result lines adapt to.
const minLineWidth = 40

// resultsHeader summarizes a finished search.
func resultsHeader(s search.State, firstPage int) string {
	pages := fmt.Sprintf("page %d", s.Page)
	if s.Page > firstPage {
		pages = fmt.Sprintf("pages %d-%d", firstPage, s.Page)
	}
	count := fmt.Sprintf("%d images", len(s.Images))
	if s.TotalAvailable > 0 {
		count = fmt.Sprintf("%d of %d images", len(s.Images), s.TotalAvailable)
	}
	return fmt.Sprintf("%s %s", formatHeader(fmt.Sprintf("Results for %q", s.Query)), formatMuted("("+pages+", "+count+")"))
}

// imageLine renders one hit as a single line of at most width cells:
// id, tags, dimensions, likes and author.
func imageLine(img search.Image, width int) string {
	width = max(width, minLineWidth)

	id := formatMuted(fmt.Sprintf("#%-9d", img.ID))
	var stats []string
	if img.Width > 0 && img.Height > 0 {
		stats = append(stats, fmt.Sprintf("%d×%d", img.Width, img.Height))
	}
	if img.Likes > 0 {
		stats = append(stats, fmt.Sprintf("♥%d", img.Likes))
	}
	if img.User != "" {
		stats = append(stats, "by "+img.User)
	}
	right := formatStats(strings.Join(stats, "  "))

	tagsW := width - ansi.StringWidth(id) - ansi.StringWidth(right) - 2
	tags := img.Tags
	if tagsW < 1 {
		tagsW = 1
	}
	if ansi.StringWidth(tags) > tagsW {
		tags = ansi.Truncate(tags, tagsW, "…")
	}
	gap := max(tagsW-ansi.StringWidth(tags), 0)
	return id + " " + formatTags(tags) + strings.Repeat(" ", gap) + " " + right
}

// imageURLLine renders the link the preview would open.
func imageURLLine(img search.Image, width int) string {
	url := img.LargeURL
	if url == "" {
		url = img.WebURL
	}
	if url == "" {
		url = img.PageURL
	}
	indent := strings.Repeat(" ", 11)
	return indent + formatMuted(ansi.Truncate(url, max(width, minLineWidth)-len(indent), "…"))
}

// notice formats a session notification for stderr.
func notice(kind search.Kind, message string) string {
	if kind == search.KindError {
		return formatError("error: ") + message
	}
	return formatNotice(message)
}

package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card is one gallery item.
type Card struct {
	Art     []string // half-block thumbnail rows, nil until loaded
	Caption string
}

// GalleryStyles groups the styles used by the gallery grid.
type GalleryStyles struct {
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Caption      lipgloss.Style
	Placeholder  lipgloss.Style
	Empty        lipgloss.Style
}

// GalleryState describes the visible part of the gallery.
type GalleryState struct {
	Width     int
	Height    int
	Cards     []Card
	Columns   int
	ArtCols   int
	ArtRows   int
	Selected  int // -1 for none
	ScrollRow int
	EmptyText string
	Styles    GalleryStyles
	Bg        lipgloss.Color
}

// RenderGallery renders the image grid. The gallery is always drawn, an empty
// result set renders EmptyText in the same box.
func RenderGallery(state GalleryState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return ""
	}
	if len(state.Cards) == 0 {
		empty := state.Styles.Empty.Render(state.EmptyText)
		placed := lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, empty,
			lipgloss.WithWhitespaceBackground(state.Bg))
		return PadLinesWithBackground(placed, state.Width, state.Height, state.Bg)
	}

	cols := state.Columns
	if cols < 1 {
		cols = 1
	}
	cardH := CardHeight(state.ArtRows, state.Styles.Card)
	visibleRows := state.Height / cardH
	if visibleRows < 1 {
		visibleRows = 1
	}

	start := state.ScrollRow * cols
	if start < 0 || start >= len(state.Cards) {
		start = 0
	}
	end := start + visibleRows*cols
	if end > len(state.Cards) {
		end = len(state.Cards)
	}

	gap := lipgloss.NewStyle().Background(state.Bg).Render(" ")
	rows := make([]string, 0, visibleRows)
	for i := start; i < end; i += cols {
		rowEnd := i + cols
		if rowEnd > end {
			rowEnd = end
		}
		cells := make([]string, 0, cols*2)
		for j := i; j < rowEnd; j++ {
			if j > i {
				cells = append(cells, gap)
			}
			cells = append(cells, renderCard(state.Cards[j], j == state.Selected, state))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return PlaceBox(state.Width, state.Height, lipgloss.Top, strings.Join(rows, "\n"), state.Bg)
}

// CardWidth returns the outer width of a card holding artCols of art.
func CardWidth(artCols int, style lipgloss.Style) int {
	return artCols + style.GetHorizontalFrameSize()
}

// CardHeight returns the outer height of a card holding artRows of art and a caption.
func CardHeight(artRows int, style lipgloss.Style) int {
	return artRows + 1 + style.GetVerticalFrameSize()
}

// Columns returns how many cards fit in width with a one-cell gap.
func Columns(width, artCols int, style lipgloss.Style) int {
	cardW := CardWidth(artCols, style)
	if cardW <= 0 {
		return 1
	}
	n := (width + 1) / (cardW + 1)
	if n < 1 {
		n = 1
	}
	return n
}

func renderCard(card Card, selected bool, state GalleryState) string {
	style := state.Styles.Card
	if selected {
		style = state.Styles.CardSelected
	}

	lines := make([]string, 0, state.ArtRows+1)
	if len(card.Art) == 0 {
		placeholder := state.Styles.Placeholder.
			Width(state.ArtCols).
			Height(state.ArtRows).
			Align(lipgloss.Center, lipgloss.Center).
			Render("◌")
		lines = append(lines, strings.Split(placeholder, "\n")...)
	} else {
		for _, line := range card.Art {
			lines = append(lines, centerLine(line, state.ArtCols))
		}
		for len(lines) < state.ArtRows {
			lines = append(lines, strings.Repeat(" ", state.ArtCols))
		}
	}
	if len(lines) > state.ArtRows {
		lines = lines[:state.ArtRows]
	}

	caption := state.Styles.Caption.Width(state.ArtCols).Render(Truncate(card.Caption, state.ArtCols))
	lines = append(lines, caption)
	return style.Render(strings.Join(lines, "\n"))
}

func centerLine(line string, width int) string {
	w := lipgloss.Width(line)
	if w >= width {
		return line
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + line + strings.Repeat(" ", width-w-left)
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/pixsearch/internal/tui/view"
)

const (
	headerH   = 1
	stripH    = 1 // loader + load-more line
	minInnerW = 20
)

const searchHint = "enter ↵"

// Layout holds dimensions derived from the window size.
type Layout struct {
	InnerW int
	InnerH int

	SearchH   int
	GalleryH  int
	FooterH   int
	Columns   int
	CardH     int
	CardRows  int // fully visible card rows
	InputW    int // textinput width
	PreviewW  int // max preview art columns
	PreviewH  int // max preview art rows
	ToastMaxW int
}

func (m Model) buildLayout(width, height int) Layout {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(width-appH, 0)
	innerH := max(height-appV, 0)

	searchH := styles.SearchStyle.GetVerticalFrameSize() + 1
	footerH := lipgloss.Height(m.help.View(m.helpKeys()))
	galleryH := max(innerH-headerH-searchH-stripH-footerH, 0)

	cardH := view.CardHeight(thumbRows, styles.CardStyle)
	cols := view.Columns(innerW, thumbCols, styles.CardStyle)
	cardRows := max(galleryH/cardH, 1)

	searchFrameW := styles.SearchStyle.GetHorizontalFrameSize()
	inputW := innerW - searchFrameW - lipgloss.Width(m.input.Prompt) - lipgloss.Width(searchHint) - 2
	if inputW < 1 {
		inputW = 1
	}

	modalFrameW := styles.ModalStyle.GetHorizontalFrameSize() + overlayPadX*2
	modalFrameH := styles.ModalStyle.GetVerticalFrameSize() + overlayPadY*2
	previewW := min(max(innerW-modalFrameW, minInnerW), 120)
	// Title, meta and URL lines, footer buttons, plus their blank separators.
	previewH := max(innerH-modalFrameH-7, 4)

	return Layout{
		InnerW:    innerW,
		InnerH:    innerH,
		SearchH:   searchH,
		GalleryH:  galleryH,
		FooterH:   footerH,
		Columns:   cols,
		CardH:     cardH,
		CardRows:  cardRows,
		InputW:    inputW,
		PreviewW:  previewW,
		PreviewH:  previewH,
		ToastMaxW: max(min(innerW/2, 48), minInnerW),
	}
}

// layout returns the layout for the current window size.
func (m Model) layout() Layout {
	return m.buildLayout(m.width, m.height)
}

func (m Model) galleryColumns() int {
	return max(m.layout().Columns, 1)
}

// ensureCursorVisible scrolls the gallery so the selected card is on screen.
func (m *Model) ensureCursorVisible() {
	layout := m.layout()
	cols := max(layout.Columns, 1)
	row := m.cursor / cols
	if row < m.scrollRow {
		m.scrollRow = row
	}
	if row >= m.scrollRow+layout.CardRows {
		m.scrollRow = row - layout.CardRows + 1
	}
	if m.scrollRow < 0 {
		m.scrollRow = 0
	}
}

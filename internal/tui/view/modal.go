// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render modal frames and buttons.
type ModalStyles struct {
	ModalHeaderStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalStyle             lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalBodyStyle         lipgloss.Style
}

// RenderModalFrame renders a modal with the provided title, body, and footer.
func RenderModalFrame(title, body, footer string, styles ModalStyles) string {
	var b strings.Builder

	header := styles.ModalHeaderStyle.Render(styles.ModalTitleStyle.Render(title))
	b.WriteString(header)
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	if footer != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ModalFooterStyle.Render(footer))
	}

	return styles.ModalStyle.Render(b.String())
}

// RenderModalButtons renders a row of modal buttons with the first one active.
func RenderModalButtons(styles ModalStyles, labels ...string) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		style := styles.ModalButtonStyle
		if i == 0 {
			style = styles.ModalButtonActiveStyle
		}
		parts = append(parts, style.Render(label))
	}
	sep := styles.ModalBodyStyle.Render(" ")
	return strings.Join(parts, sep)
}

// PreviewModalState describes the image preview modal.
type PreviewModalState struct {
	Title   string
	Art     []string // rendered image rows
	Loading bool
	Spinner string
	Err     string
	Meta    []string
	URL     string
	ArtCols int
	ArtRows int
	Styles  ModalStyles
	Muted   lipgloss.Style
	Error   lipgloss.Style
}

// RenderPreviewModal renders the enlarged image with its metadata.
func RenderPreviewModal(state PreviewModalState) string {
	var body string
	switch {
	case len(state.Art) > 0:
		body = strings.Join(state.Art, "\n")
	case state.Loading:
		body = placeArea(state.Spinner+" Loading preview...", state.ArtCols, state.ArtRows, state.Muted)
	case state.Err != "":
		body = placeArea(state.Err, state.ArtCols, state.ArtRows, state.Error)
	default:
		body = placeArea("No preview", state.ArtCols, state.ArtRows, state.Muted)
	}

	if len(state.Meta) > 0 {
		body += "\n\n" + state.Styles.ModalBodyStyle.Render(strings.Join(state.Meta, "  ·  "))
	}
	if state.URL != "" {
		body += "\n" + state.Muted.Render(Truncate(state.URL, max(state.ArtCols, 20)))
	}

	footer := RenderModalButtons(state.Styles, "[Esc/Enter] Close", "[y] Copy URL")
	return RenderModalFrame(state.Title, body, footer, state.Styles)
}

func placeArea(text string, w, h int, style lipgloss.Style) string {
	if w <= 0 || h <= 0 {
		return style.Render(text)
	}
	return style.Width(w).Height(h).Align(lipgloss.Center, lipgloss.Center).Render(Truncate(text, w))
}

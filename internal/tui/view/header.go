package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderState holds the title bar contents.
type HeaderState struct {
	Width       int
	Title       string
	Status      string
	TitleStyle  lipgloss.Style
	StatusStyle lipgloss.Style
	Bg          lipgloss.Color
}

// RenderHeader renders the title on the left and the status on the right.
func RenderHeader(state HeaderState) string {
	title := state.TitleStyle.Render(state.Title)
	if state.Width <= 0 {
		return title
	}
	statusW := state.Width - lipgloss.Width(title) - 1
	status := ""
	if statusW > 0 && state.Status != "" {
		status = state.StatusStyle.Render(Truncate(state.Status, statusW))
	}
	gap := state.Width - lipgloss.Width(title) - lipgloss.Width(status)
	if gap < 0 {
		gap = 0
	}
	filler := lipgloss.NewStyle().Background(state.Bg).Render(strings.Repeat(" ", gap))
	return title + filler + status
}

// StatusLabel summarizes the session for the header.
func StatusLabel(query string, page, shown, total int) string {
	if query == "" {
		return "type a query and press enter"
	}
	if total > 0 {
		return fmt.Sprintf("%q · page %d · %d of %d", query, page, shown, total)
	}
	return fmt.Sprintf("%q · page %d · %d shown", query, page, shown)
}

package view

import "github.com/charmbracelet/lipgloss"

// LoadMoreState drives the strip below the gallery.
type LoadMoreState struct {
	Width        int
	Loading      bool
	Spinner      string // spinner.View()
	LoadingText  string
	ShowButton   bool
	ButtonLabel  string
	ButtonActive bool
	LoaderStyle  lipgloss.Style
	ButtonStyle  lipgloss.Style
	ActiveStyle  lipgloss.Style
	Bg           lipgloss.Color
}

// RenderLoader renders the loading indicator. It is empty unless loading.
func RenderLoader(state LoadMoreState) string {
	if !state.Loading {
		return ""
	}
	text := state.Spinner
	if state.LoadingText != "" {
		text += " " + state.LoadingText
	}
	return state.LoaderStyle.Render(text)
}

// RenderLoadMore renders the load-more button. It is empty unless ShowButton.
func RenderLoadMore(state LoadMoreState) string {
	if !state.ShowButton {
		return ""
	}
	style := state.ButtonStyle
	if state.ButtonActive {
		style = state.ActiveStyle
	}
	return style.Render(state.ButtonLabel)
}

// RenderLoadMoreStrip centers the loader and the button on one line.
func RenderLoadMoreStrip(state LoadMoreState) string {
	loader := RenderLoader(state)
	button := RenderLoadMore(state)
	content := loader
	if button != "" {
		if content != "" {
			content += lipgloss.NewStyle().Background(state.Bg).Render("  ")
		}
		content += button
	}
	if state.Width <= 0 {
		return content
	}
	return lipgloss.PlaceHorizontal(state.Width, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(state.Bg))
}

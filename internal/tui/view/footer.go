package view

import "github.com/charmbracelet/lipgloss"

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW   int
	FooterH  int
	HelpLine string
	VAlign   lipgloss.Position
	Bg       lipgloss.Color
}

// RenderFooter renders the key help line.
func RenderFooter(state FooterViewState) string {
	if state.FooterH <= 0 {
		return ""
	}
	return PlaceBox(state.InnerW, state.FooterH, state.VAlign, Truncate(state.HelpLine, state.InnerW), state.Bg)
}

package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SearchFormState holds the rendered input and its frame styles.
type SearchFormState struct {
	Width      int
	Input      string // textinput.View()
	Hint       string
	Focused    bool
	Style      lipgloss.Style
	FocusStyle lipgloss.Style
	HintStyle  lipgloss.Style
}

// RenderSearchForm renders the search bar: a bordered input with a submit hint.
func RenderSearchForm(state SearchFormState) string {
	style := state.Style
	if state.Focused {
		style = state.FocusStyle
	}
	if state.Width <= 0 {
		return style.Render(state.Input)
	}

	hint := ""
	if state.Hint != "" {
		hint = state.HintStyle.Render(state.Hint)
	}
	frameW := style.GetHorizontalFrameSize()
	innerW := state.Width - frameW
	if innerW < 1 {
		innerW = 1
	}

	input := Truncate(state.Input, innerW-lipgloss.Width(hint))
	gap := innerW - lipgloss.Width(input) - lipgloss.Width(hint)
	if gap < 0 {
		hint = ""
		gap = innerW - lipgloss.Width(input)
	}
	if gap < 0 {
		gap = 0
	}
	line := input + strings.Repeat(" ", gap) + hint
	return style.Width(innerW + style.GetHorizontalPadding()).Render(line)
}

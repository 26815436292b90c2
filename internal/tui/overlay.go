package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Halo of backdrop cells drawn around modal content.
const (
	overlayPadX = 2
	overlayPadY = 1
)

// OverlayModel centers modal content over the base view inside an opaque
// backdrop box.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{bgColor: lipgloss.Color("")}
}

// SetActive shows or hides the overlay.
func (o *OverlayModel) SetActive(active bool) {
	o.active = active
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the backdrop color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws content centered on top of base.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := trimTrailingEmpty(strings.Split(content, "\n"))
	contentW := 0
	for _, line := range contentLines {
		if w := lipgloss.Width(line); w > contentW {
			contentW = w
		}
	}
	if contentW == 0 {
		return base
	}

	boxW := min(contentW+overlayPadX*2, width)
	boxH := min(len(contentLines)+overlayPadY*2, height)
	top := max((height-boxH)/2, 0)
	left := max((width-boxW)/2, 0)

	box := o.box(contentLines, contentW, boxW, boxH)
	baseLines := normalizeLines(base, width, height)
	for i, line := range box {
		row := top + i
		leftSlice := ansi.Cut(baseLines[row], 0, left)
		rightSlice := ansi.Cut(baseLines[row], left+boxW, width)
		baseLines[row] = leftSlice + line + rightSlice
	}
	return strings.Join(baseLines, "\n")
}

// box lays content inside a boxW x boxH backdrop, centering it.
func (o OverlayModel) box(content []string, contentW, boxW, boxH int) []string {
	bgSeq := ""
	if o.bgColor != "" {
		bgSeq = ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
	}
	blank := bgSeq + strings.Repeat(" ", boxW) + ansi.ResetStyle

	lines := make([]string, boxH)
	for i := range lines {
		lines[i] = blank
	}

	innerW := min(contentW, boxW)
	top := max((boxH-len(content))/2, 0)
	left := max((boxW-innerW)/2, 0)
	for i, line := range content {
		row := top + i
		if row >= boxH {
			break
		}
		w := lipgloss.Width(line)
		if w > innerW {
			line = ansi.Cut(line, 0, innerW)
			w = innerW
		}
		if bgSeq != "" {
			line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
		}
		rightPad := boxW - left - w
		lines[row] = bgSeq + strings.Repeat(" ", left) + line + bgSeq + strings.Repeat(" ", max(rightPad, 0)) + ansi.ResetStyle
	}
	return lines
}

func trimTrailingEmpty(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// normalizeLines pads or cuts base to exactly width x height cells.
func normalizeLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, line := range lines {
		w := lipgloss.Width(line)
		switch {
		case w > width:
			lines[i] = ansi.Cut(line, 0, width)
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}

package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		w,
		h,
		lipgloss.Left,
		vAlign,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads content to width/height with a background color.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := 0; i < height; i++ {
		line := lines[i]
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			continue
		}
		lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// PlaceTopRight splices content over the top-right corner of base, margin
// cells away from both edges.
func PlaceTopRight(base, content string, width, height, margin int) string {
	contentLines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	contentW := 0
	for _, line := range contentLines {
		if w := lipgloss.Width(line); w > contentW {
			contentW = w
		}
	}
	if contentW == 0 || width <= 0 || height <= 0 {
		return base
	}
	if contentW > width {
		contentW = width
	}

	top := margin
	left := width - contentW - margin
	if top+len(contentLines) > height {
		top = 0
	}
	if left < 0 {
		left = 0
	}

	return splice(base, contentLines, top, left, contentW, width, height)
}

// splice overwrites a contentW-wide block of base starting at (top, left).
func splice(base string, block []string, top, left, blockW, width, height int) string {
	baseLines := strings.Split(PadLinesWithBackground(base, width, height, lipgloss.Color("")), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, strings.Repeat(" ", width))
	}

	for i, line := range block {
		row := top + i
		if row < 0 || row >= height {
			continue
		}
		lineWidth := lipgloss.Width(line)
		if lineWidth > blockW {
			line = ansi.Cut(line, 0, blockW)
			lineWidth = blockW
		}
		leftSlice := ansi.Cut(baseLines[row], 0, left)
		rightSlice := ansi.Cut(baseLines[row], left+lineWidth, width)
		baseLines[row] = leftSlice + line + ansi.ResetStyle + rightSlice
	}

	return strings.Join(baseLines, "\n")
}

// ApplyModalBackgroundResets reapplies modal background after ANSI resets.
func ApplyModalBackgroundResets(line string, modalBg lipgloss.Color) string {
	bgSeq := ModalBackgroundSeq(modalBg)
	if bgSeq == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

// ModalBackgroundSeq returns the background escape sequence for the modal color.
func ModalBackgroundSeq(modalBg lipgloss.Color) string {
	if modalBg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(modalBg))).String()
}

// Truncate shortens s to width cells, ending with an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(s, width, "…")
}

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestOverlaySetActive(t *testing.T) {
	overlay := NewOverlayModel()
	if overlay.Active() {
		t.Fatalf("expected overlay to start inactive")
	}

	overlay.SetActive(true)
	if !overlay.Active() {
		t.Fatalf("expected overlay to be active")
	}

	overlay.SetActive(false)
	if overlay.Active() {
		t.Fatalf("expected overlay to be inactive")
	}
}

func TestOverlayRenderInactiveReturnsBase(t *testing.T) {
	overlay := NewOverlayModel()
	base := "alpha\nbeta"
	got := overlay.Render(base, 10, 2, "content")
	if got != base {
		t.Fatalf("expected base content unchanged when inactive")
	}
}

func TestOverlayRenderCentersContent(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetBackground(lipgloss.Color("#0c0c0c"))
	overlay.SetActive(true)

	width := 30
	height := 11
	row := strings.Repeat(".", width)
	base := strings.Repeat(row+"\n", height-1) + row
	got := overlay.Render(base, width, height, "PREVIEW")

	lines := strings.Split(got, "\n")
	if len(lines) != height {
		t.Fatalf("lines = %d, want %d", len(lines), height)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Fatalf("line %d width = %d, want %d", i, w, width)
		}
	}

	// Box is 7+4 wide and 1+2 tall, centered.
	mid := ansi.Strip(lines[5])
	if mid != ".........  PREVIEW  .........." {
		t.Fatalf("middle line = %q", mid)
	}
	if above := ansi.Strip(lines[4]); above != "........."+strings.Repeat(" ", 11)+".........." {
		t.Fatalf("halo line = %q", above)
	}
	if top := ansi.Strip(lines[0]); top != row {
		t.Fatalf("expected untouched rows outside the box, got %q", top)
	}
}

func TestOverlayRenderClipsWideContent(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetActive(true)

	got := overlay.Render("", 10, 3, strings.Repeat("x", 40))
	for i, line := range strings.Split(got, "\n") {
		if w := lipgloss.Width(line); w != 10 {
			t.Fatalf("line %d width = %d, want 10", i, w)
		}
	}
}

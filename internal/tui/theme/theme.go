// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultName is used when the configured theme is empty or unknown.
const DefaultName = "mocha"

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds the base colors of a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Cards, search bar
	BgSelection string `toml:"bg_selection"` // Selected card
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"` // Captions, placeholders
	Accent      string `toml:"accent"`   // Title, borders
	Success     string `toml:"success"`  // Info toasts
	Danger      string `toml:"danger"`   // Error toasts
	Warning     string `toml:"warning"`  // Loading indicator

	// Optional [modal] table for the preview dialog.
	ModalOverrides ModalPalette `toml:"modal"`
}

// ModalPalette holds the preview dialog colors.
type ModalPalette struct {
	Bg        string `toml:"bg"`
	Border    string `toml:"border"`
	Text      string `toml:"text"`
	Muted     string `toml:"muted"`
	Highlight string `toml:"highlight"`
}

// Load reads a theme by name from the embedded files. Unknown names fall
// back to DefaultName.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsAvailable(name) {
		name = DefaultName
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	if t.Danger == "" {
		t.Danger = coalesce(t.Warning, t.Accent)
	}
	if t.Success == "" {
		t.Success = t.Accent
	}
	return &t, nil
}

// Modal resolves the dialog colors, using base colors for unset entries.
func (t *Theme) Modal() ModalPalette {
	o := t.ModalOverrides
	return ModalPalette{
		Bg:        coalesce(o.Bg, t.BgHighlight, t.Bg),
		Border:    coalesce(o.Border, t.Accent),
		Text:      coalesce(o.Text, t.Fg),
		Muted:     coalesce(o.Muted, t.FgMuted),
		Highlight: coalesce(o.Highlight, t.BgSelection, t.Accent),
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available lists the embedded theme names, DefaultName first and the rest
// in alphabetical order.
func Available() []string {
	entries, err := fs.ReadDir(embeddedThemes, "embedded")
	if err != nil {
		return []string{DefaultName}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".toml")
		if !ok || name == DefaultName {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return append([]string{DefaultName}, names...)
}

// IsAvailable reports whether a theme name is embedded.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(name))
}

// Package tui provides the terminal user interface for pixsearch.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/pixsearch/internal/tui/theme"
	"github.com/javiermolinar/pixsearch/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorSuccess     lipgloss.Color
	colorDanger      lipgloss.Color
	colorWarning     lipgloss.Color

	colorTextOnAccent lipgloss.Color

	// Header
	TitleStyle  lipgloss.Style
	StatusStyle lipgloss.Style

	// Search form
	SearchStyle            lipgloss.Style
	SearchFocusedStyle     lipgloss.Style
	SearchHintStyle        lipgloss.Style
	SearchTextStyle        lipgloss.Style
	SearchPromptStyle      lipgloss.Style
	SearchPlaceholderStyle lipgloss.Style
	SearchCursorStyle      lipgloss.Style

	// Gallery
	CardStyle         lipgloss.Style
	CardSelectedStyle lipgloss.Style
	CaptionStyle      lipgloss.Style
	PlaceholderStyle  lipgloss.Style
	EmptyStyle        lipgloss.Style

	// Loader and load-more button
	SpinnerStyle         lipgloss.Style
	LoaderStyle          lipgloss.Style
	LoadMoreStyle        lipgloss.Style
	LoadMoreFocusedStyle lipgloss.Style

	// Toasts
	ToastInfoStyle  lipgloss.Style
	ToastErrorStyle lipgloss.Style

	// Help text
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
	HelpSepStyle  lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMutedStyle        lipgloss.Style
	ModalErrorStyle        lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorSuccess = palette.Success
	s.colorDanger = palette.Danger
	s.colorWarning = palette.Warning
	s.colorTextOnAccent = palette.TextOnAccent

	// Header
	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Search form
	s.SearchStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBg).
		Padding(0, 1)

	s.SearchFocusedStyle = s.SearchStyle.
		BorderForeground(s.colorAccent)

	s.SearchHintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.SearchTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.SearchPromptStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.SearchPlaceholderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.SearchCursorStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	// Gallery
	s.CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorBgSelection).
		BorderBackground(s.colorBg).
		Background(palette.CardBg)

	s.CardSelectedStyle = s.CardStyle.
		BorderForeground(s.colorAccent).
		Background(palette.CardSelectedBg)

	s.CaptionStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.EmptyStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Italic(true)

	// Loader and load-more button
	s.SpinnerStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg)

	s.LoaderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.LoadMoreStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight).
		Padding(0, 2)

	s.LoadMoreFocusedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent).
		Padding(0, 2)

	// Toasts
	s.ToastInfoStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnSuccess).
		Background(palette.ToastInfoBg).
		Padding(0, 1)

	s.ToastErrorStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnDanger).
		Background(palette.ToastErrorBg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorDanger).
		BorderBackground(s.colorBg).
		Padding(0, 1)

	// Help
	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.HelpDescStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.HelpSepStyle = lipgloss.NewStyle().
		Foreground(s.colorBgSelection).
		Background(s.colorBg)

	// Modal
	modalBg := palette.Modal.Bg
	s.ModalBgColor = modalBg
	s.ModalBackdropColor = palette.Modal.Backdrop

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Modal.Border).
		BorderBackground(modalBg).
		Background(modalBg).
		Padding(1, 2)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(modalBg)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(palette.Modal.Text).
		Background(modalBg)

	s.ModalMutedStyle = lipgloss.NewStyle().
		Foreground(palette.Modal.Muted).
		Background(modalBg)

	s.ModalErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorDanger).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Foreground(palette.Modal.Text).
		Background(palette.Modal.Panel).
		Padding(0, 1)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Modal.ReverseText).
		Background(palette.Modal.Highlight).
		Padding(0, 1)

	// App container
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Padding(0, 1)

	return s
}

// ModalStyles returns the styles the view package needs for modal frames.
func (s *Styles) ModalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       s.ModalHeaderStyle,
		ModalTitleStyle:        s.ModalTitleStyle,
		ModalFooterStyle:       s.ModalFooterStyle,
		ModalStyle:             s.ModalStyle,
		ModalButtonStyle:       s.ModalButtonStyle,
		ModalButtonActiveStyle: s.ModalButtonActiveStyle,
		ModalBodyStyle:         s.ModalBodyStyle,
	}
}

// GalleryStyles returns the gallery grid styles.
func (s *Styles) GalleryStyles() view.GalleryStyles {
	return view.GalleryStyles{
		Card:         s.CardStyle,
		CardSelected: s.CardSelectedStyle,
		Caption:      s.CaptionStyle,
		Placeholder:  s.PlaceholderStyle,
		Empty:        s.EmptyStyle,
	}
}

// ToastStyles returns the toast styles.
func (s *Styles) ToastStyles() view.ToastStyles {
	return view.ToastStyles{
		Info:  s.ToastInfoStyle,
		Error: s.ToastErrorStyle,
	}
}

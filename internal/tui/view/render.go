// Package view provides view composition helpers for the TUI.
package view

// OverlayRenderer renders modal overlays on top of base content.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
}

// ViewState contains pre-rendered content and overlay metadata.
type ViewState struct {
	Width            int
	Height           int
	BaseContent      string
	ModalContent     string
	ShowModal        bool
	Overlay          OverlayRenderer
	ToastContent     string // stacked toasts, drawn top-right above everything
	ToastMargin      int
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	out := state.BaseContent
	if state.ShowModal && state.Overlay != nil {
		out = state.Overlay.Render(out, state.Width, state.Height, state.ModalContent)
	}
	if state.ToastContent != "" {
		out = PlaceTopRight(out, state.ToastContent, state.Width, state.Height, state.ToastMargin)
	}
	return out
}

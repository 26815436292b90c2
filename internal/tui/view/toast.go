package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ToastView is one visible notification.
type ToastView struct {
	Message string
	Error   bool
}

// ToastStyles groups toast styles. Error carries a border; Info does not.
type ToastStyles struct {
	Info  lipgloss.Style
	Error lipgloss.Style
}

// RenderToasts stacks toasts newest last, each wrapped to maxWidth.
func RenderToasts(toasts []ToastView, maxWidth int, styles ToastStyles) string {
	if len(toasts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(toasts))
	for _, t := range toasts {
		parts = append(parts, RenderToast(t, maxWidth, styles))
	}
	return lipgloss.JoinVertical(lipgloss.Right, parts...)
}

// RenderToast renders a single toast.
func RenderToast(t ToastView, maxWidth int, styles ToastStyles) string {
	style := styles.Info
	if t.Error {
		style = styles.Error
	}
	msg := strings.TrimSpace(t.Message)
	if maxWidth > 0 {
		inner := maxWidth - style.GetHorizontalFrameSize()
		if inner < 1 {
			inner = 1
		}
		if lipgloss.Width(msg) > inner {
			style = style.Width(inner + style.GetHorizontalPadding())
		}
	}
	return style.Render(msg)
}

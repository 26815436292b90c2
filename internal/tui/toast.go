package tui

import (
	"github.com/javiermolinar/pixsearch/internal/search"
	"github.com/javiermolinar/pixsearch/internal/tui/view"
)

// maxToasts caps the stack; the oldest toast is dropped first.
const maxToasts = 4

// Toast is a transient notification.
type Toast struct {
	ID      int
	Kind    search.Kind
	Message string
}

// ToastStack collects notifications from the session. It implements
// search.Notifier, so the session stays unaware of rendering.
type ToastStack struct {
	nextID  int
	items   []Toast
	pending []Toast
}

// NewToastStack creates an empty stack.
func NewToastStack() *ToastStack {
	return &ToastStack{}
}

var _ search.Notifier = (*ToastStack)(nil)

// Notify pushes a toast.
func (s *ToastStack) Notify(kind search.Kind, message string) {
	s.Push(kind, message)
}

// Push adds a toast and returns its id.
func (s *ToastStack) Push(kind search.Kind, message string) int {
	s.nextID++
	s.items = append(s.items, Toast{ID: s.nextID, Kind: kind, Message: message})
	if len(s.items) > maxToasts {
		s.items = s.items[len(s.items)-maxToasts:]
	}
	s.pending = append(s.pending, s.items[len(s.items)-1])
	return s.nextID
}

// TakePending returns toasts pushed since the last call. Each needs an expiry timer.
func (s *ToastStack) TakePending() []Toast {
	pending := s.pending
	s.pending = nil
	return pending
}

// Dismiss removes the toast with id. It reports whether it was present.
func (s *ToastStack) Dismiss(id int) bool {
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns the visible toasts, oldest first.
func (s *ToastStack) Items() []Toast {
	out := make([]Toast, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of visible toasts.
func (s *ToastStack) Len() int {
	return len(s.items)
}

func (s *ToastStack) views() []view.ToastView {
	views := make([]view.ToastView, 0, len(s.items))
	for _, t := range s.items {
		views = append(views, view.ToastView{
			Message: t.Message,
			Error:   t.Kind == search.KindError,
		})
	}
	return views
}

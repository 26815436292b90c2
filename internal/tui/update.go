package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/pixsearch/internal/preview"
	"github.com/javiermolinar/pixsearch/internal/search"
	"github.com/javiermolinar/pixsearch/internal/tui/commands"
)

var errPreviewUnavailable = errors.New("preview unavailable")

const (
	copiedMessage     = "Image URL copied to clipboard."
	copyFailedMessage = "Could not copy the image URL."
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		layout := m.layout()
		m.input.Width = layout.InputW
		m.help.Width = layout.InnerW
		m.renderPreviewArt()
		m.ensureCursorVisible()
		return m, nil

	case commands.SearchResultMsg:
		before := m.session.Len()
		outcome := m.session.Resolve(msg.Request, msg.Result, msg.Err)
		LogOutcome(msg.Request, outcome, len(msg.Result.Hits), msg.Elapsed, msg.Err)
		cmds := []tea.Cmd{m.toastCmds()}
		if outcome == search.OutcomeAppended {
			cmds = append(cmds, m.loadThumbnails(before))
		}
		return m, tea.Batch(cmds...)

	case commands.PreviewLoadedMsg:
		// The modal may have closed or moved on since the download started.
		if msg.URL != m.session.SelectedImageURL() {
			return m, nil
		}
		m.previewLoading = false
		if msg.Err != nil {
			LogError("preview", msg.Err)
			m.previewErr = msg.Err
			return m, nil
		}
		m.previewImg = msg.Image
		m.renderPreviewArt()
		return m, nil

	case commands.ThumbnailLoadedMsg:
		if !m.thumbPending[msg.ID] {
			return m, nil
		}
		delete(m.thumbPending, msg.ID)
		if msg.Err != nil {
			LogError("thumbnail", msg.Err)
			return m, nil
		}
		m.thumbs[msg.ID] = msg.Art.Lines
		return m, nil

	case commands.ToastExpiredMsg:
		m.toasts.Dismiss(msg.ID)
		return m, nil

	case commands.ClipboardMsg:
		if msg.Err != nil {
			LogError("clipboard", msg.Err)
			m.toasts.Push(search.KindError, copyFailedMessage)
		} else {
			m.toasts.Push(search.KindInfo, copiedMessage)
		}
		return m, m.toastCmds()

	case spinner.TickMsg:
		if !m.session.Loading() && !m.previewLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other component messages.
	if m.focus == focusSearch && !m.session.ShowModal() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// effect runs the session's fetch trigger after a state change and issues the
// request it yields, if any.
func (m Model) effect() tea.Cmd {
	cmds := []tea.Cmd{m.toastCmds()}
	if req, ok := m.session.Effect(); ok {
		LogSearch(req)
		cmds = append(cmds, commands.Search(m.searcher, req, m.requestTimeout), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// toastCmds schedules expiry for toasts pushed since the last call.
func (m Model) toastCmds() tea.Cmd {
	pending := m.toasts.TakePending()
	if len(pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(pending))
	for _, t := range pending {
		cmds = append(cmds, commands.ExpireToast(t.ID, m.toastLifetime(t.Kind)))
	}
	return tea.Batch(cmds...)
}

// toastLifetime returns how long a toast of kind stays on screen. Errors
// stay longer than confirmations.
func (m Model) toastLifetime(kind search.Kind) time.Duration {
	if kind == search.KindError {
		return m.toastTTL
	}
	return m.infoTTL
}

// loadThumbnails requests thumbnails for images from index from onwards.
func (m Model) loadThumbnails(from int) tea.Cmd {
	if m.fetcher == nil {
		return nil
	}
	var cmds []tea.Cmd
	for i := from; i < m.session.Len(); i++ {
		img, _ := m.session.Image(i)
		if _, ok := m.thumbs[img.ID]; ok || m.thumbPending[img.ID] {
			continue
		}
		url := img.ThumbnailURL
		if url == "" {
			url = img.WebURL
		}
		m.thumbPending[img.ID] = true
		cmds = append(cmds, commands.LoadThumbnail(m.fetcher, img.ID, url, thumbCols, thumbRows))
	}
	return tea.Batch(cmds...)
}

// renderPreviewArt redraws the modal image for the current window size.
func (m *Model) renderPreviewArt() {
	if m.previewImg == nil || m.width == 0 || m.height == 0 {
		return
	}
	layout := m.layout()
	m.previewArt = preview.Render(m.previewImg, layout.PreviewW, layout.PreviewH)
}

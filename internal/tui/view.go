package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/pixsearch/internal/tui/view"
)

const (
	appTitle       = "pixsearch"
	emptyGallery   = "No images yet. Search for something above."
	loadMoreLabel  = "Load more (m)"
	loadingLabel   = "Loading..."
	toastMargin    = 1
	tooSmallNotice = "Terminal too small"
)

// View renders the TUI.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	showModal := m.session.ShowModal()
	modal := ""
	overlay := m.overlay
	overlay.SetActive(showModal)
	if showModal {
		modal = m.renderModal()
	}

	layout := m.layout()
	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		ModalContent:     modal,
		ShowModal:        showModal,
		Overlay:          overlay,
		ToastContent:     view.RenderToasts(m.toasts.views(), layout.ToastMaxW, m.styles.ToastStyles()),
		ToastMargin:      toastMargin,
		EmptyPlaceholder: loadingLabel,
	}
}

func (m Model) renderAppContent() string {
	layout := m.layout()
	if layout.InnerW < minInnerW || layout.GalleryH <= 0 {
		return tooSmallNotice
	}

	snap := m.session.Snapshot()
	header := view.RenderHeader(view.HeaderState{
		Width:       layout.InnerW,
		Title:       appTitle,
		Status:      view.StatusLabel(snap.Query, snap.Page, len(snap.Images), snap.TotalAvailable),
		TitleStyle:  m.styles.TitleStyle,
		StatusStyle: m.styles.StatusStyle,
		Bg:          m.styles.colorBg,
	})

	form := view.RenderSearchForm(view.SearchFormState{
		Width:      layout.InnerW,
		Input:      m.input.View(),
		Hint:       searchHint,
		Focused:    m.focus == focusSearch && !snap.ShowModal(),
		Style:      m.styles.SearchStyle,
		FocusStyle: m.styles.SearchFocusedStyle,
		HintStyle:  m.styles.SearchHintStyle,
	})

	gallery := view.RenderGallery(m.galleryState(layout))

	strip := view.RenderLoadMoreStrip(view.LoadMoreState{
		Width:        layout.InnerW,
		Loading:      snap.Loading,
		Spinner:      m.spinner.View(),
		LoadingText:  loadingLabel,
		ShowButton:   snap.ShowLoadMore(),
		ButtonLabel:  loadMoreLabel,
		ButtonActive: m.focus == focusGallery && !snap.Loading,
		LoaderStyle:  m.styles.LoaderStyle,
		ButtonStyle:  m.styles.LoadMoreStyle,
		ActiveStyle:  m.styles.LoadMoreFocusedStyle,
		Bg:           m.styles.colorBg,
	})
	strip = view.PlaceBox(layout.InnerW, stripH, lipgloss.Top, strip, m.styles.colorBg)

	footer := view.RenderFooter(view.FooterViewState{
		InnerW:   layout.InnerW,
		FooterH:  layout.FooterH,
		HelpLine: m.help.View(m.helpKeys()),
		VAlign:   lipgloss.Bottom,
		Bg:       m.styles.colorBg,
	})

	content := lipgloss.JoinVertical(lipgloss.Left, header, form, gallery, strip, footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) galleryState(layout Layout) view.GalleryState {
	n := m.session.Len()
	cards := make([]view.Card, 0, n)
	for i := 0; i < n; i++ {
		img, _ := m.session.Image(i)
		cards = append(cards, view.Card{
			Art:     m.thumbs[img.ID],
			Caption: img.Tags,
		})
	}

	selected := -1
	if m.focus == focusGallery && n > 0 {
		selected = m.cursor
	}

	return view.GalleryState{
		Width:     layout.InnerW,
		Height:    layout.GalleryH,
		Cards:     cards,
		Columns:   layout.Columns,
		ArtCols:   thumbCols,
		ArtRows:   thumbRows,
		Selected:  selected,
		ScrollRow: m.scrollRow,
		EmptyText: emptyGallery,
		Styles:    m.styles.GalleryStyles(),
		Bg:        m.styles.colorBg,
	}
}

func (m Model) renderModal() string {
	layout := m.layout()
	title := "Preview"
	var meta []string
	if img, ok := m.session.Image(m.cursor); ok && (img.LargeURL == m.previewURL || img.WebURL == m.previewURL) {
		if img.Tags != "" {
			title = img.Tags
		}
		if img.Width > 0 && img.Height > 0 {
			meta = append(meta, fmt.Sprintf("%d×%d", img.Width, img.Height))
		}
		if img.User != "" {
			meta = append(meta, "by "+img.User)
		}
		if img.Likes > 0 {
			meta = append(meta, fmt.Sprintf("♥ %d", img.Likes))
		}
	}

	errText := ""
	if m.previewErr != nil {
		errText = "Could not load preview: " + m.previewErr.Error()
	}

	artCols := layout.PreviewW
	artRows := min(layout.PreviewH, thumbRows*2)
	if !m.previewArt.Empty() {
		artCols = m.previewArt.Cols
		artRows = m.previewArt.Rows
	}

	return view.RenderPreviewModal(view.PreviewModalState{
		Title:   view.Truncate(title, artCols),
		Art:     m.previewArt.Lines,
		Loading: m.previewLoading,
		Spinner: m.spinner.View(),
		Err:     errText,
		Meta:    meta,
		URL:     m.session.SelectedImageURL(),
		ArtCols: artCols,
		ArtRows: artRows,
		Styles:  m.styles.ModalStyles(),
		Muted:   m.styles.ModalMutedStyle,
		Error:   m.styles.ModalErrorStyle,
	})
}

// statusLine summarizes focus and visible controls for the debug log.
func (m Model) statusLine() string {
	var b strings.Builder
	b.WriteString(m.focus.String())
	if m.session.Loading() {
		b.WriteString(" loading")
	}
	if m.session.ShowLoadMore() {
		b.WriteString(" load-more")
	}
	if m.session.ShowModal() {
		b.WriteString(" modal")
	}
	return b.String()
}

package tui

import "testing"

func TestBuildLayout_Sections(t *testing.T) {
	m := *New(nil, testConfig())
	l := m.buildLayout(120, 40)

	if l.InnerW != 118 || l.InnerH != 40 {
		t.Fatalf("inner = %dx%d, want 118x40", l.InnerW, l.InnerH)
	}
	if got := headerH + l.SearchH + l.GalleryH + stripH + l.FooterH; got != l.InnerH {
		t.Fatalf("sections sum to %d, want %d", got, l.InnerH)
	}
	if l.Columns != 4 {
		t.Fatalf("columns = %d, want 4", l.Columns)
	}
	if l.CardRows < 1 || l.CardRows*l.CardH > l.GalleryH {
		t.Fatalf("card rows = %d (card height %d) do not fit gallery height %d", l.CardRows, l.CardH, l.GalleryH)
	}
	if l.ToastMaxW != 48 {
		t.Fatalf("toast width = %d, want 48", l.ToastMaxW)
	}
}

func TestBuildLayout_NarrowWindow(t *testing.T) {
	m := *New(nil, testConfig())
	l := m.buildLayout(30, 20)

	if l.Columns != 1 {
		t.Fatalf("columns = %d, want 1", l.Columns)
	}
	if l.InputW < 1 || l.PreviewW < minInnerW {
		t.Fatalf("unexpected widths: input=%d preview=%d", l.InputW, l.PreviewW)
	}
	if l.ToastMaxW != minInnerW {
		t.Fatalf("toast width = %d, want %d", l.ToastMaxW, minInnerW)
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	m := newTestModel(&fakeSearcher{})
	rows := m.layout().CardRows
	cols := m.galleryColumns()

	m.cursor = cols * (rows + 2)
	m.ensureCursorVisible()
	if m.scrollRow != 3 {
		t.Fatalf("scroll row = %d, want 3", m.scrollRow)
	}

	m.cursor = 0
	m.ensureCursorVisible()
	if m.scrollRow != 0 {
		t.Fatalf("scroll row = %d, want 0", m.scrollRow)
	}
}

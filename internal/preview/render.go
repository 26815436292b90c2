package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/image/draw"
)

// halfBlock paints the top pixel with the foreground color and the bottom
// pixel with the background color.
const halfBlock = "▀"

// Art is a rendered image: one string per terminal row.
type Art struct {
	Lines []string
	Cols  int
	Rows  int
}

// String joins the rendered rows.
func (a Art) String() string {
	return strings.Join(a.Lines, "\n")
}

// Empty reports whether nothing was rendered.
func (a Art) Empty() bool {
	return len(a.Lines) == 0
}

// Fit returns the cell size that keeps the image aspect ratio inside
// maxCols x maxRows. Each cell holds two vertical pixels.
func Fit(bounds image.Rectangle, maxCols, maxRows int) (int, int) {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || maxCols <= 0 || maxRows <= 0 {
		return 0, 0
	}
	maxPxH := maxRows * 2

	cols := maxCols
	pxH := h * cols / w
	if pxH > maxPxH {
		pxH = maxPxH
		cols = w * pxH / h
	}
	if cols < 1 {
		cols = 1
	}
	rows := (pxH + 1) / 2
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// Render scales img into at most maxCols x maxRows terminal cells.
func Render(img image.Image, maxCols, maxRows int) Art {
	if img == nil {
		return Art{}
	}
	cols, rows := Fit(img.Bounds(), maxCols, maxRows)
	if cols == 0 || rows == 0 {
		return Art{}
	}

	scaled := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	lines := make([]string, rows)
	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.Reset()
		for col := 0; col < cols; col++ {
			top := scaled.RGBAAt(col, row*2)
			bottom := scaled.RGBAAt(col, row*2+1)
			b.WriteString(ansi.Style{}.
				ForegroundColor(ansi.HexColor(hex(top))).
				BackgroundColor(ansi.HexColor(hex(bottom))).
				String())
			b.WriteString(halfBlock)
		}
		b.WriteString(ansi.ResetStyle)
		lines[row] = b.String()
	}
	return Art{Lines: lines, Cols: cols, Rows: rows}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

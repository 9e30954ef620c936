//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter draws the board as filled cell rectangles by uploading
// one pixel per cell into an RGBA image and scaling it to the screen.
type GridPainter struct {
	rows, cols   int
	cellW, cellH float64
	img          *ebiten.Image
	buf          []byte
}

// NewGridPainter allocates a painter mapping a rows*cols grid onto a
// screenW*screenH surface.
func NewGridPainter(rows, cols, screenW, screenH int) *GridPainter {
	gp := &GridPainter{
		rows:  rows,
		cols:  cols,
		cellW: float64(screenW) / float64(cols),
		cellH: float64(screenH) / float64(rows),
		buf:   make([]byte, 4*rows*cols),
	}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []bool, alive, dead color.Color) {
	if len(cells) != gp.rows*gp.cols {
		return
	}
	fillBoolRGBA(gp.buf, cells, alive, dead)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(gp.cellW, gp.cellH)
	dst.DrawImage(gp.img, op)
}

// Highlight strokes an outline around the cell at (row, col). Negative
// coordinates mean no highlight and draw nothing.
func (gp *GridPainter) Highlight(dst *ebiten.Image, row, col int, clr color.Color) {
	if row < 0 || col < 0 {
		return
	}
	x := float32(float64(col) * gp.cellW)
	y := float32(float64(row) * gp.cellH)
	vector.StrokeRect(dst, x, y, float32(gp.cellW), float32(gp.cellH), 2, clr, false)
}

// CellSize returns the pixel dimensions of one cell.
func (gp *GridPainter) CellSize() (w, h float64) { return gp.cellW, gp.cellH }

// Package board holds the toroidal Game of Life grid and its
// transition rule. The grid is a fixed-size boolean field; every
// coordinate is wrapped modulo the dimensions before use, so no
// access can go out of bounds.
package board

import (
	"fmt"
	"math/rand/v2"

	"github.com/chrismitchell027/conways-game-of-life/internal/core"
)

// Board stores cells in row-major order. Dimensions are fixed at
// construction and never change.
type Board struct {
	rows, cols int
	cells      []bool
}

// New allocates an all-dead board. Non-positive dimensions are a
// construction error.
func New(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board: invalid dimensions %dx%d", rows, cols)
	}
	return &Board{rows: rows, cols: cols, cells: make([]bool, rows*cols)}, nil
}

// Random allocates a board where each cell is independently alive with
// probability density, drawn from the provided source.
func Random(rows, cols int, density float64, src *rand.Rand) (*Board, error) {
	b, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	core.FillDensity(src, b.cells, density)
	return b, nil
}

// Rows returns the row count.
func (b *Board) Rows() int { return b.rows }

// Cols returns the column count.
func (b *Board) Cols() int { return b.cols }

// Cells exposes the backing slice so the renderer can read values
// directly.
func (b *Board) Cells() []bool { return b.cells }

// Index returns the linear slice index for the (already normalized)
// coordinates.
func (b *Board) Index(row, col int) int { return row*b.cols + col }

// Wrap applies toroidal wrapping, mapping any integer coordinates onto
// the grid with a non-negative result.
func (b *Board) Wrap(row, col int) (int, int) {
	row = (row%b.rows + b.rows) % b.rows
	col = (col%b.cols + b.cols) % b.cols
	return row, col
}

// Alive reports whether the cell at the wrapped coordinate is alive.
func (b *Board) Alive(row, col int) bool {
	row, col = b.Wrap(row, col)
	return b.cells[b.Index(row, col)]
}

// Set writes the cell at the wrapped coordinate unconditionally.
func (b *Board) Set(row, col int, alive bool) {
	row, col = b.Wrap(row, col)
	b.cells[b.Index(row, col)] = alive
}

// Toggle flips the cell at the wrapped coordinate.
func (b *Board) Toggle(row, col int) {
	row, col = b.Wrap(row, col)
	idx := b.Index(row, col)
	b.cells[idx] = !b.cells[idx]
}

// Clear kills every cell. Dimensions are unchanged.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = false
	}
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cells {
		if c {
			n++
		}
	}
	return n
}

// Neighbors counts the live cells among the 8 wrapped neighbors of
// (row, col). The scan order is fixed so results are reproducible.
func (b *Board) Neighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if b.Alive(row+dr, col+dc) {
				n++
			}
		}
	}
	return n
}

// Step computes the next generation under B3/S23 rules and returns it
// as a fresh board. The receiver is left untouched so every cell is
// judged against the same prior generation.
func (b *Board) Step() *Board {
	next := &Board{rows: b.rows, cols: b.cols, cells: make([]bool, len(b.cells))}
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			n := b.Neighbors(row, col)
			alive := b.cells[b.Index(row, col)]
			next.cells[next.Index(row, col)] = (alive && (n == 2 || n == 3)) || (!alive && n == 3)
		}
	}
	return next
}

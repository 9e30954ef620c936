//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status is the per-frame state the HUD renders.
type Status struct {
	Generation int
	Population int
	Paused     bool
}

// HUD draws a one-line status readout in the top-left corner.
type HUD struct {
	clr color.Color
}

// NewHUD constructs a HUD with the default text color.
func NewHUD() *HUD {
	return &HUD{clr: color.RGBA{R: 120, G: 220, B: 120, A: 255}}
}

// Draw renders the status line onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	line := fmt.Sprintf("gen %d  pop %d", st.Generation, st.Population)
	if st.Paused {
		line += "  [paused]"
	}
	text.Draw(screen, line, basicfont.Face7x13, 4, 14, h.clr)
}

//go:build !ebiten

package ui

// Status is the per-frame state the HUD renders.
type Status struct {
	Generation int
	Population int
	Paused     bool
}

// HUD is a no-op placeholder used when the ebiten build tag is absent.
type HUD struct{}

// NewHUD constructs a stub HUD.
func NewHUD() *HUD { return &HUD{} }

// Draw is a no-op in headless builds.
func (h *HUD) Draw(any, Status) {}

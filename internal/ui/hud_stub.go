//go:build !ebiten

package ui

// Status is the per-frame state the HUD renders.
type Status struct {
	Element   string
	Gravity   string
	Paused    bool
	Brush     int
	Speed     float64
	Particles int
	Tick      uint64
}

// HUD is a no-op placeholder used when the ebiten build tag is absent.
type HUD struct{}

// NewHUD constructs a stub HUD.
func NewHUD() *HUD { return &HUD{} }

// Toggle is a no-op in headless builds.
func (h *HUD) Toggle() {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, Status) {}

//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

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

// HUD prints simulation status in the screen corner.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD, visible by default.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw renders the status block.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if !h.visible {
		return
	}
	state := "running"
	if s.Paused {
		state = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s | gravity %s | brush %d | speed %.2fx | %s",
		s.Element, s.Gravity, s.Brush, s.Speed, state))
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"particles %d | tick %d", s.Particles, s.Tick), 0, 16)
}

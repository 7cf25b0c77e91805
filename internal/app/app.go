//go:build ebiten

package app

import (
	"image/color"
	"os"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/render"
	"sandfall/internal/sand"
	"sandfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// palette is the element selection order for the digit keys and Tab cycling.
var palette = []sand.ElementType{
	sand.Sand, sand.Water, sand.Wall, sand.Wood, sand.Metal, sand.Oil,
	sand.Acid, sand.Fire, sand.Steam, sand.Smoke, sand.Spark,
	sand.WaterSource, sand.SandSource, sand.Void,
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
	ebiten.KeyDigit9, ebiten.KeyDigit0,
}

const saveFile = "sandfall.snap"

// Game adapts the sand world to the ebiten.Game interface: brush input,
// settings keys, and fixed-step tick pacing with catch-up.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	hud     *ui.HUD
	timer   *core.FixedStep
	log     *zap.Logger

	scale    int
	baseTPS  int
	seed     int64
	selected int

	dragging  bool
	erasing   bool
	lastX     int
	lastY     int
	tickOnce  bool
	backColor color.RGBA
}

// New constructs a Game for the provided world.
func New(world *sand.World, scale, tps int, seed int64, log *zap.Logger) *Game {
	size := world.Size()
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		world:     world,
		painter:   render.NewGridPainter(size.W, size.H),
		hud:       ui.NewHUD(),
		timer:     core.NewFixedStep(tps),
		log:       log,
		scale:     scale,
		baseTPS:   tps,
		seed:      seed,
		backColor: color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF},
	}
}

// Reset reinitializes the world state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.log.Info("world reset", zap.Int64("seed", seed))
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()

	g.timer.SetTPS(int(float64(g.baseTPS) * g.world.Speed()))
	pending := g.timer.Pending()
	if pending > 8 {
		// Cap catch-up after a long stall so a single frame never freezes
		// on simulation work.
		pending = 8
	}
	if g.world.Running() {
		for i := 0; i < pending; i++ {
			g.world.Step()
		}
	} else if g.tickOnce {
		g.world.Step()
	}
	g.tickOnce = false
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.world.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.tickOnce = true
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Reset(g.seed)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.world.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		if !g.world.Undo() {
			g.log.Debug("nothing to undo")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyY):
		if !g.world.Redo() {
			g.log.Debug("nothing to redo")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		next := g.world.GravityDirection() + 1
		if next > sand.GravityNone {
			next = sand.GravityDown
		}
		g.world.SetGravity(next)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.selected = (g.selected + 1) % len(palette)
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.hud.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.world.SetSpeed(g.world.Speed() + 0.25)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.world.SetSpeed(g.world.Speed() - 0.25)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.world.SetIntParameter("brush_radius", g.world.BrushRadius()+1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.world.SetIntParameter("brush_radius", g.world.BrushRadius()-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		g.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyF9):
		g.load()
	}

	for i, key := range digitKeys {
		if i < len(palette) && inpututil.IsKeyJustPressed(key) {
			g.selected = i
		}
	}
}

// handleMouse applies brush strokes. A drag spanning multiple frames paints
// once per interpolated point between the previous and current cursor cell,
// each point its own history entry.
func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	cx, cy := mx/g.scale, my/g.scale

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	if !left && !right {
		g.dragging = false
		return
	}

	erase := right && !left
	if !g.dragging || erase != g.erasing {
		g.dragging = true
		g.erasing = erase
		g.lastX, g.lastY = cx, cy
	}

	for _, pt := range sand.LinePoints(g.lastX, g.lastY, cx, cy) {
		if g.erasing {
			g.world.Erase(pt.X, pt.Y)
		} else {
			g.world.Paint(pt.X, pt.Y, palette[g.selected])
		}
	}
	g.lastX, g.lastY = cx, cy
}

func (g *Game) save() {
	data, err := g.world.Export()
	if err != nil {
		g.log.Error("export failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(saveFile, data, 0o644); err != nil {
		g.log.Error("save failed", zap.Error(err))
		return
	}
	g.log.Info("snapshot saved",
		zap.String("path", saveFile),
		zap.Int("bytes", len(data)),
		zap.Int("particles", g.world.ParticleCount()))
}

func (g *Game) load() {
	data, err := os.ReadFile(saveFile)
	if err != nil {
		g.log.Error("load failed", zap.Error(err))
		return
	}
	start := time.Now()
	if err := g.world.Import(data); err != nil {
		g.log.Error("import rejected", zap.Error(err))
		return
	}
	g.log.Info("snapshot loaded",
		zap.String("path", saveFile),
		zap.Int("particles", g.world.ParticleCount()),
		zap.Duration("took", time.Since(start)))
}

// Draw renders the current world state and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world, g.backColor, g.scale)
	g.hud.Draw(screen, ui.Status{
		Element:   palette[g.selected].String(),
		Gravity:   g.world.GravityDirection().String(),
		Paused:    !g.world.Running(),
		Brush:     g.world.BrushRadius(),
		Speed:     g.world.Speed(),
		Particles: g.world.ParticleCount(),
		Tick:      g.world.Tick(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}

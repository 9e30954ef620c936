//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/chrismitchell027/conways-game-of-life/internal/board"
	"github.com/chrismitchell027/conways-game-of-life/internal/config"
	"github.com/chrismitchell027/conways-game-of-life/internal/core"
	"github.com/chrismitchell027/conways-game-of-life/internal/render"
	"github.com/chrismitchell027/conways-game-of-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game owns the board and adapts it to the ebiten.Game interface. All
// input handling, editing, and generation stepping happens inside
// Update, so the board is only ever touched from one goroutine.
type Game struct {
	cfg     config.Settings
	board   *board.Board
	painter *render.GridPainter
	hud     *ui.HUD
	cadence *core.Cadence
	rng     *core.RNG

	aliveColor     color.Color
	deadColor      color.Color
	highlightColor color.Color

	paused     bool
	stepOnce   bool
	generation int

	cellW, cellH float64

	lastX, lastY int
	lastMove     time.Time
	// Highlighted cell; (-1, -1) when the pointer has been idle past
	// the decay threshold.
	hlRow, hlCol int
}

// New constructs a Game around an already initialized board.
func New(cfg config.Settings, b *board.Board, rng *core.RNG) *Game {
	cellW, cellH := cfg.CellSize()
	return &Game{
		cfg:            cfg,
		board:          b,
		painter:        render.NewGridPainter(cfg.Rows, cfg.Cols, cfg.ScreenWidth, cfg.ScreenHeight),
		hud:            ui.NewHUD(),
		cadence:        core.NewCadence(cfg.StepInterval),
		rng:            rng,
		aliveColor:     color.White,
		deadColor:      color.Black,
		highlightColor: color.RGBA{R: 255, A: 255},
		cellW:          cellW,
		cellH:          cellH,
		hlRow:          -1,
		hlCol:          -1,
	}
}

// Update handles per-frame input, edits, and the generation cadence.
func (g *Game) Update() error {
	now := time.Now()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.board.Clear()
		g.generation = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.reseed(time.Now().UnixNano())
	}

	x, y := ebiten.CursorPosition()
	row := int(float64(y) / g.cellH)
	col := int(float64(x) / g.cellW)

	if x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		g.lastMove = now
		g.hlRow, g.hlCol = row, col
	}

	// Edits apply immediately, paused or not.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.board.Set(row, col, true)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.board.Set(row, col, false)
	}

	if now.Sub(g.lastMove) >= g.cfg.HighlightDecay {
		g.hlRow, g.hlCol = -1, -1
	}

	if (!g.paused && g.cadence.Due(now)) || g.stepOnce {
		g.board = g.board.Step()
		g.generation++
		g.stepOnce = false
	}
	return nil
}

// Draw renders the board, the highlight outline, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Cells(), g.aliveColor, g.deadColor)
	g.painter.Highlight(screen, g.hlRow, g.hlCol, g.highlightColor)
	g.hud.Draw(screen, ui.Status{
		Generation: g.generation,
		Population: g.board.Population(),
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

func (g *Game) reseed(seed int64) {
	g.rng = core.NewRNG(seed)
	b, err := board.Random(g.cfg.Rows, g.cfg.Cols, g.cfg.Density, g.rng.Source())
	if err != nil {
		return
	}
	g.board = b
	g.generation = 0
}

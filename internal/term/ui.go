// Package term is the terminal frontend: a gocui layout with a status
// panel and a mouse-editable grid view. It renders the same board the
// GUI frontend does, one character per cell.
package term

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/chrismitchell027/conways-game-of-life/internal/board"
	"github.com/chrismitchell027/conways-game-of-life/internal/config"
	"github.com/chrismitchell027/conways-game-of-life/internal/core"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type binding struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
	view    string
}

// UI drives the terminal session. The board is only mutated from the
// gocui main loop: keybinding handlers run there, and the generation
// ticker funnels its steps through gocui.Gui.Update.
type UI struct {
	g   *gocui.Gui
	cfg config.Settings
	rng *core.RNG

	board      *board.Board
	paused     bool
	generation int

	keys       []binding
	liveFiller string
	deadFiller string
	done       chan struct{}
}

// New constructs the terminal UI around an already initialized board.
func New(cfg config.Settings, b *board.Board, rng *core.RNG) *UI {
	t := &UI{
		cfg:        cfg,
		rng:        rng,
		board:      b,
		liveFiller: aurora.Green("█").String(),
		deadFiller: "·",
		done:       make(chan struct{}),
	}
	t.keys = []binding{
		{gocui.KeyCtrlC, "^C", "Quit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause/resume", t.cmdPause, ""},
		{'c', "C", "Clear board", t.cmdClear, ""},
		{'n', "N", "Single step", t.cmdStep, ""},
		{'w', "W", "Reseed random", t.cmdReseed, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdToggle, "grid"},
	}
	return t
}

// Run starts the gocui main loop and blocks until the user quits.
func (t *UI) Run() error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return err
	}
	defer g.Close()
	t.g = g

	g.Mouse = true
	g.SetManagerFunc(t.layout)
	for _, kb := range t.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.view, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error {
			return h(v)
		}); err != nil {
			return err
		}
	}

	ticker := time.NewTicker(t.cfg.StepInterval)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				t.g.Update(func(_ *gocui.Gui) error {
					if !t.paused {
						t.board = t.board.Step()
						t.generation++
					}
					return nil
				})
			}
		}
	}()

	err = g.MainLoop()
	close(t.done)
	if err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (t *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView("header", -1, -1, maxX, 1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
		fmt.Fprint(v, " Conway's Game of Life")
	}

	statusWidth := 26
	if v, err := g.SetView("status", 0, 1, statusWidth, maxY-3); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if v != nil {
		v.Title = "Status"
		t.renderStatus(v)
	}

	if v, err := g.SetView("grid", statusWidth+1, 1, maxX-1, maxY-3); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if v != nil {
		v.Title = "Board"
		t.renderGrid(v)
	}

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if v != nil {
		v.Frame = false
		t.renderHelp(v)
	}
	return nil
}

func (t *UI) renderStatus(v *gocui.View) {
	mode := aurora.Cyan("running").String()
	if t.paused {
		mode = aurora.Yellow("paused").String()
	}
	v.Clear()
	fmt.Fprintf(v, " %s: %dx%d\n", aurora.Green("Grid"), t.board.Rows(), t.board.Cols())
	fmt.Fprintf(v, " %s: %v\n", aurora.Green("Interval"), t.cfg.StepInterval)
	fmt.Fprintf(v, " %s: %d\n", aurora.Green("Generation"), t.generation)
	fmt.Fprintf(v, " %s: %d\n", aurora.Green("Live cells"), t.board.Population())
	fmt.Fprintf(v, " %s: %s\n", aurora.Green("Mode"), mode)
}

func (t *UI) renderGrid(v *gocui.View) {
	v.Clear()
	maxW, maxH := v.Size()

	var b bytes.Buffer
	for row := 0; row < t.board.Rows(); row++ {
		if row >= maxH {
			break
		}
		if row != 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < t.board.Cols(); col++ {
			if col >= maxW {
				break
			}
			if t.board.Alive(row, col) {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	fmt.Fprint(v, b.String())
}

func (t *UI) renderHelp(v *gocui.View) {
	v.Clear()
	var b bytes.Buffer
	b.WriteString("KEYBINDINGS: ")
	for i, k := range t.keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	fmt.Fprint(v, b.String())
}

func (t *UI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *UI) cmdPause(_ *gocui.View) error {
	t.paused = !t.paused
	return nil
}

func (t *UI) cmdClear(_ *gocui.View) error {
	t.board.Clear()
	t.generation = 0
	return nil
}

func (t *UI) cmdStep(_ *gocui.View) error {
	t.board = t.board.Step()
	t.generation++
	return nil
}

func (t *UI) cmdReseed(_ *gocui.View) error {
	t.rng = core.NewRNG(time.Now().UnixNano())
	b, err := board.Random(t.cfg.Rows, t.cfg.Cols, t.cfg.Density, t.rng.Source())
	if err != nil {
		log.Panicln(err)
	}
	t.board = b
	t.generation = 0
	return nil
}

func (t *UI) cmdToggle(v *gocui.View) error {
	col, row := v.Cursor()
	if row < t.board.Rows() && col < t.board.Cols() {
		t.board.Toggle(row, col)
	}
	return nil
}

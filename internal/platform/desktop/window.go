// Package desktop runs a game in a native window with Ebitengine.
package desktop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/superhero-arcade/internal/core"
	"github.com/vovakirdan/superhero-arcade/internal/games/superhero"
	"github.com/vovakirdan/superhero-arcade/internal/storage"
)

// Options configures a window session.
type Options struct {
	Store      *storage.Store // Nil disables run persistence
	Seed       int64          // 0 picks a time-based seed
	Difficulty string
	Scale      float64 // Window size relative to the arena; defaults to 1
	Logger     *log.Logger
}

// Window adapts a superhero.Game to ebiten.Game.
type Window struct {
	game    *superhero.Game
	store   *storage.Store
	log     *log.Logger
	keys    keyState
	seed    int64
	diff    string
	state   core.GameState
	saved   bool // Whether the current finished run has been stored
	quitKey bool // Quit key state on the previous tick
}

// NewWindow resets the game and wraps it for ebiten.
func NewWindow(game *superhero.Game, opts Options) *Window {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := core.DefaultConfig()
	rt.Seed = seed
	game.Reset(rt)

	return &Window{
		game:  game,
		store: opts.Store,
		log:   logger,
		keys:  ebiten.IsKeyPressed,
		seed:  seed,
		diff:  opts.Difficulty,
		state: game.State(),
	}
}

// Update advances the simulation one tick. ebiten calls it at a fixed TPS.
func (w *Window) Update() error {
	in := inputFrame(w.keys)

	// Quit fires on release so the key press never leaks into the next program
	quit := in.Has(core.ActionQuit)
	if w.quitKey && !quit {
		return ebiten.Termination
	}
	w.quitKey = quit

	wasOver := w.state.GameOver
	w.state = w.game.Step(in).State

	if wasOver && !w.state.GameOver {
		w.saved = false
	}
	if w.state.GameOver && !w.saved {
		w.saveRun()
		w.saved = true
	}
	return nil
}

func (w *Window) saveRun() {
	run := storage.FinishedRun(w.game.ID(), w.state, w.seed, w.diff)
	w.log.Info("run over", "game", run.GameID, "outcome", run.Outcome, "score", run.Score)
	if w.store == nil {
		return
	}
	if _, err := w.store.SaveRun(run); err != nil {
		w.log.Error("cannot save run", "err", err)
	}
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	drawFrame(screen, w.game.Frame())
}

// Layout keeps the logical screen at arena size; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	a := w.game.Arena()
	return int(a.W), int(a.H)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *superhero.Game, opts Options) error {
	w := NewWindow(game, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	a := game.Arena()
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(a.W*scale), int(a.H*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	return ebiten.RunGame(w)
}

// Package superhero implements Super Hero Adventure, a side-scrolling
// shooter: run, jump and shoot through two waves of enemies, then defeat
// the boss on level 3.
package superhero

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/superhero-arcade/internal/config"
	"github.com/vovakirdan/superhero-arcade/internal/core"
	"github.com/vovakirdan/superhero-arcade/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "superhero"

// Game implements the Super Hero Adventure simulation.
type Game struct {
	cfg      config.SuperheroConfig
	fixedCfg bool // Set by NewWithConfig; Reset then skips config loading
	arena    Arena
	runtime  core.RuntimeConfig

	session  Session
	player   *Player
	world    *World
	director *Director
	resolver Resolver
	stars    *Starfield

	pauseHeld bool
	log       *log.Logger
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{log: log.New(io.Discard)}
}

// NewWithConfig creates a game with fixed tuning. Used by tests and the window frontend.
func NewWithConfig(cfg config.SuperheroConfig) *Game {
	g := New()
	g.cfg = cfg
	g.fixedCfg = true
	return g
}

// SetLogger routes debug events to l. Nil restores the discard logger.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.log = l
	if g.director != nil {
		g.director.log = l
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Super Hero Adventure"
}

// Reset builds a fresh run. The world is a fixed-size arena from config;
// runtime screen size only affects rendering.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadSuperhero(configPath)
		if err != nil {
			g.log.Warn("using default config", "err", err)
			cfg = config.DefaultSuperheroConfig()
		}
		if difficultyPreset != "" {
			config.ApplySuperheroPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.arena = Arena{W: g.cfg.World.Width, H: g.cfg.World.Height}
	g.player = NewPlayer(g.cfg)
	g.world = NewWorld()
	g.director = NewDirector(runtime.Seed, g.arena)
	g.director.log = g.log
	g.resolver = NewResolver(g.cfg.Combat)
	g.stars = NewStarfield(g.cfg.World.Stars, runtime.Seed+1, g.arena)

	g.restart()
}

// restart returns to the start of level 1 with the run's seed.
// Calling it twice in a row yields the same state.
func (g *Game) restart() {
	seed := g.runtime.Seed
	g.director.Reseed(seed)
	g.stars.Reset(seed + 1)
	g.world.Reset()
	g.player.Reset()
	g.session = newSession()
	g.pauseHeld = false

	g.director.Load(1, g.world)
	g.log.Debug("run started", "seed", seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.GameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	// Pause toggles on the press, not while held
	pause := in.Has(core.ActionPause)
	if pause && !g.pauseHeld {
		g.session.Paused = !g.session.Paused
	}
	g.pauseHeld = pause

	if g.session.Paused {
		return core.StepResult{State: g.State()}
	}

	g.session.Tick++
	g.stars.Update()

	shots := g.player.Update(in, g.arena)
	g.world.Update(g.arena)
	for _, s := range shots {
		g.world.Add(s)
	}

	g.logEscapes()
	g.world.Sweep()

	rep := g.resolver.Resolve(g.world, g.player, &g.session)
	g.logReport(rep)
	g.world.Sweep()

	if !g.session.GameOver {
		g.checkLevelComplete()
	}

	if g.session.GameOver {
		g.log.Info("run finished",
			"outcome", g.session.Outcome,
			"score", g.session.Score,
			"stage", g.session.Level,
			"ticks", g.session.Tick)
	}

	return core.StepResult{State: g.State()}
}

// checkLevelComplete advances when the enemy partition is empty.
// Clearing the final level wins.
func (g *Game) checkLevelComplete() {
	if len(g.world.Enemies()) > 0 {
		return
	}
	if g.session.Level < FinalLevel {
		g.session.Level++
		g.director.Load(g.session.Level, g.world)
		return
	}
	g.session.Finish(OutcomeWin)
}

func (g *Game) logEscapes() {
	for _, e := range g.world.Enemies() {
		if !e.Alive && e.OffLeft() {
			g.log.Debug("enemy left screen", "kind", e.Enemy, "seq", e.Seq)
		}
	}
}

func (g *Game) logReport(rep Report) {
	for _, k := range rep.Kills {
		g.log.Debug("enemy destroyed", "kind", k, "score", g.session.Score)
	}
	if rep.BossDefeated {
		g.log.Debug("boss defeated", "tick", g.session.Tick)
	}
	if rep.LifeLost {
		g.log.Debug("life lost", "lives", g.player.Lives)
	}
	if rep.Pickup != nil {
		g.log.Debug("collected", "pickup", *rep.Pickup)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Level:    g.session.Level,
		GameOver: g.session.GameOver,
		Won:      g.session.Outcome == OutcomeWin,
		Paused:   g.session.Paused,
		Tick:     g.session.Tick,
	}
}

// Outcome reports how the run ended, or OutcomeNone while it is live.
func (g *Game) Outcome() Outcome {
	return g.session.Outcome
}

// Arena returns the simulated playfield size.
func (g *Game) Arena() Arena {
	return g.arena
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

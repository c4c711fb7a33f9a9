// Package rundash implements Sports Rundash, a single-screen platformer.
// The player hops between platforms collecting coins while obstacles fall
// from the sky; touching one ends the run.
//
// The package is pure game logic. Front ends own the clock, the keyboard,
// the drawing surface and persistence; they drive a Game through Handle,
// Poll, Update, Render and Sync.
package rundash

import (
	"math/rand"

	"github.com/vovakirdan/rundash/internal/config"
	"github.com/vovakirdan/rundash/internal/core"
)

// Phase is the run state machine.
type Phase int

const (
	PhaseIdle    Phase = iota // preview drawn, nothing moves
	PhaseRunning              // update+render every frame
	PhaseStopped              // game over overlay, waiting for start
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseStopped:
		return "game over"
	default:
		return "unknown"
	}
}

// Held reports which movement actions are currently held.
// *core.HeldKeys satisfies it.
type Held interface {
	Held(a core.Action) bool
}

// Game is one game session. It owns every entity and counter; nothing is
// shared, so callers must drive it from a single goroutine.
type Game struct {
	cfg  config.RundashConfig
	view core.Viewport
	rng  *rand.Rand

	player    Player
	platforms []Platform
	coins     []Coin
	obstacles []Obstacle

	score     int
	coinCount int
	highScore int
	phase     Phase
	frame     int   // frames simulated in the current run
	sceneSeed int64 // scenery seed, rerolled per run
}

// New creates a session in the idle phase with a populated preview world.
func New(cfg config.RundashConfig, view core.Viewport, seed int64) *Game {
	g := &Game{
		cfg:       cfg,
		view:      view,
		rng:       rand.New(rand.NewSource(seed)),
		platforms: make([]Platform, 0, cfg.World.Platforms),
		coins:     make([]Coin, 0, cfg.World.Coins),
		obstacles: make([]Obstacle, 0, cfg.World.Obstacles),
	}
	g.initialize()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.cfg.Game.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Game.Title
}

// Phase returns the current run state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Viewport returns the current drawable area.
func (g *Game) Viewport() core.Viewport {
	return g.view
}

// Resize changes the drawable area. Entities keep their positions; the
// next update clamps the player back inside.
func (g *Game) Resize(v core.Viewport) {
	g.view = v
}

// SetHighScore seeds the best score, typically from persistent storage.
func (g *Game) SetHighScore(score int) {
	if score < 0 {
		score = 0
	}
	g.highScore = score
}

// Start begins a new run unless one is already in progress.
// Returns true if a run was started.
func (g *Game) Start() bool {
	if g.phase == PhaseRunning {
		return false
	}
	g.Reset()
	return true
}

// Reset re-initializes the world and starts a run unconditionally.
func (g *Game) Reset() {
	g.initialize()
	g.phase = PhaseRunning
}

// Handle applies the edge-triggered actions of one key event batch.
// Returns true if a run was (re)started.
func (g *Game) Handle(in core.InputFrame) bool {
	started := false
	if in.Has(core.ActionReset) {
		g.Reset()
		started = true
	} else if in.Has(core.ActionStart) {
		started = g.Start()
	}
	if in.Has(core.ActionJump) {
		g.Jump()
	}
	return started
}

// Jump launches the player if a run is active and they are not airborne.
// Returns true if the jump happened; repeats while airborne are no-ops.
func (g *Game) Jump() bool {
	if g.phase != PhaseRunning || g.player.Jumping {
		return false
	}
	g.player.VelocityY = -g.player.JumpPower
	g.player.Jumping = true
	return true
}

// Poll applies one tick of level-triggered movement for the held keys.
// It runs on its own fixed-rate clock, independent of Update.
func (g *Game) Poll(h Held) {
	if g.phase != PhaseRunning {
		return
	}
	if h.Held(core.ActionLeft) {
		g.player.X -= g.player.Speed
	}
	if h.Held(core.ActionRight) {
		g.player.X += g.player.Speed
	}
	if h.Held(core.ActionDown) {
		g.player.Y += g.player.Speed
	}
}

// State returns the counters and status for display.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Coins:     g.coinCount,
		HighScore: g.highScore,
		Running:   g.phase == PhaseRunning,
		GameOver:  g.phase == PhaseStopped,
	}
}

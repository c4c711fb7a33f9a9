// Package window runs Sports Rundash in a desktop window using Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/rundash/internal/config"
	"github.com/vovakirdan/rundash/internal/core"
	"github.com/vovakirdan/rundash/internal/games/rundash"
)

// HUD layout, in logical pixels below the field
const (
	hudHeight = 40
	buttonW   = 80
	buttonH   = 24
	buttonGap = 10
)

var (
	colHUD       = color.RGBA{0x11, 0x18, 0x27, 0xff}
	colButton    = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	colButtonHot = color.RGBA{0x60, 0xa5, 0xfa, 0xff}
)

// Keyboard bindings
var (
	jumpKeys  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	downKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}

	movement = []struct {
		action core.Action
		keys   []ebiten.Key
	}{
		{core.ActionLeft, leftKeys},
		{core.ActionRight, rightKeys},
		{core.ActionDown, downKeys},
	}
)

// HighScores persists the best score between sessions.
// *storage.Store satisfies it.
type HighScores interface {
	HighScore(key string) (int, error)
	SaveHighScore(key string, score int) error
}

// Options configures a window session.
type Options struct {
	Config config.RundashConfig
	Seed   int64       // 0 picks a time-based seed
	Width  int         // initial window width; 0 uses 800
	Store  HighScores  // nil disables persistence
	Logger *log.Logger // nil discards logs
}

type button struct {
	label  string
	rect   core.Rect
	action core.Action
}

// Game adapts a rundash.Game to ebiten.Game.
type Game struct {
	game     *rundash.Game
	cfg      config.RundashConfig
	store    HighScores
	logger   *log.Logger
	canvas   *Canvas
	held     *core.HeldKeys
	counters rundash.Counters
	buttons  []button
}

// NewGame creates a window session with an idle game and the stored best score.
func NewGame(opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Width <= 0 {
		opts.Width = 800
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	vp := opts.Config.Viewport
	view := core.ViewportFromWidth(float64(opts.Width), vp.Aspect, vp.MaxHeight)

	g := &Game{
		game:   rundash.New(opts.Config, view, opts.Seed),
		cfg:    opts.Config,
		store:  opts.Store,
		logger: logger,
		canvas: NewCanvas(),
		held:   core.NewKeyState(),
	}
	if g.store != nil {
		high, err := g.store.HighScore(g.cfg.HighScoreKey())
		if err != nil {
			g.logger.Warn("could not load high score", "error", err)
		}
		g.game.SetHighScore(high)
	}
	g.game.Sync(&g.counters)
	g.placeButtons()
	return g
}

// placeButtons lays out Start and Reset at the right end of the HUD.
func (g *Game) placeButtons() {
	view := g.game.Viewport()
	y := int(view.H) + (hudHeight-buttonH)/2
	reset := int(view.W) - buttonGap - buttonW
	start := reset - buttonGap - buttonW
	g.buttons = []button{
		{label: "Start", rect: core.NewRect(start, y, buttonW, buttonH), action: core.ActionStart},
		{label: "Reset", rect: core.NewRect(reset, y, buttonW, buttonH), action: core.ActionReset},
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput collects this tick's edge-triggered actions and refreshes the
// held movement keys.
func (g *Game) readInput(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	if anyJustPressed(jumpKeys) {
		in.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionStart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionReset)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		in.Set(core.ActionQuit)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for _, b := range g.buttons {
			if b.rect.Contains(x, y) {
				in.Set(b.action)
			}
		}
	}

	for _, m := range movement {
		if anyPressed(m.keys) {
			g.held.Press(m.action, now)
		} else {
			g.held.Release(m.action)
		}
	}
	return in
}

// Update runs one tick: edge actions, one movement poll, one frame.
func (g *Game) Update() error {
	in := g.readInput(time.Now())
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if g.game.Handle(in) {
		g.logger.Info("run started", "high_score", g.game.State().HighScore)
	}
	g.game.Poll(g.held)

	wasRunning := g.game.Phase() == rundash.PhaseRunning
	result := g.game.Update()
	g.game.Sync(&g.counters)

	if wasRunning && result.State.GameOver {
		g.logger.Info("game over", "score", result.State.Score, "coins", result.State.Coins)
	}
	if result.NewHighScore && g.store != nil {
		if err := g.store.SaveHighScore(g.cfg.HighScoreKey(), result.State.HighScore); err != nil {
			g.logger.Error("could not save high score", "score", result.State.HighScore, "error", err)
		} else {
			g.logger.Info("new high score", "score", result.State.HighScore)
		}
	}
	return nil
}

// Draw renders the field and the HUD strip below it.
func (g *Game) Draw(screen *ebiten.Image) {
	view := g.game.Viewport()
	g.canvas.Bind(screen, view)
	g.game.Render(g.canvas)

	if g.game.Phase() == rundash.PhaseIdle {
		g.canvas.Text(view.W/2, view.H/2, "Press Enter or click Start", rundash.TextBody, rundash.TextColor)
	}

	vector.DrawFilledRect(screen, 0, float32(view.H), float32(view.W), hudHeight, colHUD, false)
	hud := fmt.Sprintf("Score: %d   Coins: %d   High Score: %d",
		g.counters.Score, g.counters.Coins, g.counters.HighScore)
	ebitenutil.DebugPrintAt(screen, hud, buttonGap, int(view.H)+(hudHeight-glyphH)/2)

	cx, cy := ebiten.CursorPosition()
	for _, b := range g.buttons {
		col := colButton
		if b.rect.Contains(cx, cy) {
			col = colButtonHot
		}
		r := b.rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
		mx, my := r.Center()
		ebitenutil.DebugPrintAt(screen, b.label, mx-len(b.label)*glyphW/2, my-glyphH/2)
	}
}

// Layout sizes the logical screen from the window width, following the
// same aspect and height cap as every other front end.
func (g *Game) Layout(outsideWidth, _ int) (int, int) {
	vp := g.cfg.Viewport
	view := core.ViewportFromWidth(float64(outsideWidth), vp.Aspect, vp.MaxHeight)
	if view.Empty() {
		view = g.game.Viewport()
	}
	if view != g.game.Viewport() {
		g.game.Resize(view)
		g.placeButtons()
	}
	return int(view.W), int(view.H) + hudHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)
	view := g.game.Viewport()

	rate := opts.Config.Input.PollRate
	if rate <= 0 {
		rate = 60
	}
	ebiten.SetTPS(rate)
	ebiten.SetWindowSize(int(view.W), int(view.H)+hudHeight)
	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

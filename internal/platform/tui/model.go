package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rundash/internal/config"
	"github.com/vovakirdan/rundash/internal/core"
	"github.com/vovakirdan/rundash/internal/games/rundash"
)

// Layout constants
const (
	hudLines  = 1 // score line above the field
	helpLines = 1 // key help below the field
)

// HUD styles
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FBBF24"))
	phaseStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#10B981"))
)

// HighScores persists the best score between sessions.
// *storage.Store satisfies it.
type HighScores interface {
	HighScore(key string) (int, error)
	SaveHighScore(key string, score int) error
}

// Options configures a terminal session.
type Options struct {
	Config  config.RundashConfig
	Runtime core.RuntimeConfig
	Store   HighScores  // nil disables persistence
	Logger  *log.Logger // nil discards logs

	// ScreenshotDir receives ctrl+s captures. Empty disables them.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a Rundash session.
type Model struct {
	game     *rundash.Game
	cfg      config.RundashConfig
	runtime  core.RuntimeConfig
	store    HighScores
	logger   *log.Logger
	screen   *core.Screen
	canvas   *CellCanvas
	styles   styleCache
	held     *core.HeldKeys
	keys     KeyMap
	help     help.Model
	counters *rundash.Counters
	shotDir  string
	clock    func() time.Time
	quitting bool
}

// NewModel creates a session sized to the runtime screen, loading the
// stored high score.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	if rt.InputRate <= 0 {
		rt.InputRate = opts.Config.Input.PollRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		cfg:      opts.Config,
		runtime:  rt,
		store:    opts.Store,
		logger:   logger,
		screen:   core.NewScreen(0, 0),
		styles:   styleCache{},
		held:     core.NewHeldKeys(time.Duration(opts.Config.Input.HoldTimeoutMS) * time.Millisecond),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		counters: &rundash.Counters{},
		shotDir:  opts.ScreenshotDir,
		clock:    time.Now,
	}

	view := m.layout(rt.ScreenW, rt.ScreenH)
	m.game = rundash.New(m.cfg, view, rt.Seed)
	m.game.SetHighScore(m.loadHighScore())
	m.game.Sync(m.counters)
	return m
}

// layout sizes the cell screen for a terminal of cols x rows and returns the
// pixel viewport it represents. Rows shrink when the terminal is short, so
// the whole viewport always fits.
func (m *Model) layout(cols, rows int) core.Viewport {
	vp := m.cfg.Viewport
	view := core.ViewportFromWidth(float64(cols)*vp.PixelsPerColumn, vp.Aspect, vp.MaxHeight)

	fieldRows := core.Max(rows-hudLines-helpLines, 0)
	if natural := int(math.Ceil(view.H / vp.PixelsPerRow)); fieldRows > natural {
		fieldRows = natural
	}

	cellH := vp.PixelsPerRow
	if fieldRows > 0 {
		cellH = view.H / float64(fieldRows)
	} else {
		view = core.Viewport{}
	}

	m.runtime.ScreenW, m.runtime.ScreenH = cols, rows
	m.screen.Resize(cols, fieldRows)
	m.canvas = NewCellCanvas(m.screen, vp.PixelsPerColumn, cellH)
	m.help.Width = cols
	return view
}

func (m Model) loadHighScore() int {
	if m.store == nil {
		return 0
	}
	high, err := m.store.HighScore(m.cfg.HighScoreKey())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
	}
	return high
}

func (m Model) saveHighScore(score int) {
	if m.store == nil {
		return
	}
	if err := m.store.SaveHighScore(m.cfg.HighScoreKey(), score); err != nil {
		m.logger.Error("could not save high score", "score", score, "error", err)
		return
	}
	m.logger.Info("new high score", "score", score)
}

// saveScreenshot writes the current field as plain text and returns the
// file path, or "" if nothing was written.
func (m Model) saveScreenshot() string {
	if m.shotDir == "" {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.canvas)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Error("could not create screenshot directory", "dir", m.shotDir, "error", err)
		return ""
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.clock().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("could not save screenshot", "path", path, "error", err)
		return ""
	}
	m.logger.Info("screenshot saved", "path", path)
	return path
}

// Game returns the running session.
func (m Model) Game() *rundash.Game {
	return m.game
}

// Counters returns the values last pushed to the HUD.
func (m Model) Counters() rundash.Counters {
	return *m.counters
}

// Init starts both clocks.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.runtime.TickRate),
		inputTickCmd(m.runtime.InputRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case InputTickMsg:
		return m.handleInputTick(time.Time(msg))

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
		return m, nil
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action.IsMovement():
		m.held.Press(action, m.clock())
		return m, nil
	}

	in := core.NewInputFrame()
	in.Set(action)
	if m.game.Handle(in) {
		m.logger.Debug("dropping held keys", "count", m.held.Len())
		m.held.ReleaseAll()
		m.logger.Info("run started", "high_score", m.game.State().HighScore)
	}
	m.game.Sync(m.counters)
	return m, nil
}

// handleResize refits the viewport. The run carries on in the new bounds.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	view := m.layout(msg.Width, msg.Height)
	m.game.Resize(view)
	m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height, "w", view.W, "h", view.H)
	return m, nil
}

// handleInputTick applies one poll of the held movement keys.
func (m Model) handleInputTick(now time.Time) (tea.Model, tea.Cmd) {
	m.held.Expire(now)
	m.game.Poll(m.held)
	return m, inputTickCmd(m.runtime.InputRate)
}

// handleFrame advances the simulation one frame.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.game.Viewport().Empty() {
		return m, frameCmd(m.runtime.TickRate)
	}

	wasRunning := m.game.Phase() == rundash.PhaseRunning
	result := m.game.Update()
	m.game.Sync(m.counters)

	if wasRunning && result.State.GameOver {
		m.logger.Info("game over", "score", result.State.Score, "coins", result.State.Coins)
		m.held.ReleaseAll()
	}
	if result.NewHighScore {
		m.saveHighScore(result.State.HighScore)
	}

	return m, frameCmd(m.runtime.TickRate)
}

// View renders the HUD, the play field and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.canvas)
	if m.game.Phase() == rundash.PhaseIdle {
		view := m.game.Viewport()
		m.canvas.Callout(view.W/2, view.H/2, "Press Enter to start", rundash.TextColor)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.hudView(),
		renderScreen(m.screen, m.styles),
		m.help.View(m.keys),
	)
}

func (m Model) hudView() string {
	c := m.counters
	line := titleStyle.Render(m.game.Title()) + "  " +
		labelStyle.Render("Score: ") + valueStyle.Render(fmt.Sprint(c.Score)) + "  " +
		labelStyle.Render("Coins: ") + valueStyle.Render(fmt.Sprint(c.Coins)) + "  " +
		labelStyle.Render("High Score: ") + valueStyle.Render(fmt.Sprint(c.HighScore)) + "  " +
		phaseStyle.Render(m.game.Phase().String())
	if m.runtime.ScreenW > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.runtime.ScreenW).Render(line)
	}
	return line
}

// Run starts the Bubble Tea program for a new session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

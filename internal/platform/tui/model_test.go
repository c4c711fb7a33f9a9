package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rundash/internal/config"
	"github.com/vovakirdan/rundash/internal/core"
	"github.com/vovakirdan/rundash/internal/games/rundash"
)

// fakeStore is an in-memory HighScores.
type fakeStore struct {
	high    int
	loadErr error
	saveErr error
	saves   []int
}

func (f *fakeStore) HighScore(string) (int, error) {
	return f.high, f.loadErr
}

func (f *fakeStore) SaveHighScore(_ string, score int) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves = append(f.saves, score)
	f.high = score
	return nil
}

func testConfig() config.RundashConfig {
	return config.DefaultRundashConfig()
}

func newTestModel(t *testing.T, store HighScores) Model {
	t.Helper()
	return NewModel(Options{
		Config:  testConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99},
		Store:   store,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelLayout(t *testing.T) {
	m := newTestModel(t, nil)

	if got := m.Game().Viewport(); got != (core.Viewport{W: 800, H: 480}) {
		t.Errorf("viewport = %+v, want 800x480", got)
	}
	if m.screen.Width() != 80 || m.screen.Height() != 22 {
		t.Errorf("field = %dx%d, want 80x22", m.screen.Width(), m.screen.Height())
	}
	if m.Game().Phase() != rundash.PhaseIdle {
		t.Errorf("phase = %v, want idle", m.Game().Phase())
	}
}

func TestLayoutTallTerminal(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 60})

	if got := m.Game().Viewport(); got != (core.Viewport{W: 400, H: 240}) {
		t.Errorf("viewport = %+v, want 400x240", got)
	}
	if m.screen.Height() != 12 {
		t.Errorf("field rows = %d, want 12", m.screen.Height())
	}
}

func TestLayoutCapsHeight(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})

	if got := m.Game().Viewport(); got != (core.Viewport{W: 2000, H: 500}) {
		t.Errorf("viewport = %+v, want 2000x500", got)
	}
}

func TestLayoutTooSmall(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 2})

	if !m.Game().Viewport().Empty() {
		t.Errorf("viewport = %+v, want empty", m.Game().Viewport())
	}
	// Frames are skipped while there is nothing to draw on.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, FrameMsg{})
	if m.Counters().Score != 0 {
		t.Errorf("score = %d, want 0 while hidden", m.Counters().Score)
	}
	_ = m.View()
}

func TestModelLoadsHighScore(t *testing.T) {
	m := newTestModel(t, &fakeStore{high: 1234})
	if m.Counters().HighScore != 1234 {
		t.Errorf("high score = %d, want 1234", m.Counters().HighScore)
	}
}

func TestModelHighScoreLoadError(t *testing.T) {
	m := newTestModel(t, &fakeStore{high: 0, loadErr: errors.New("corrupt")})
	if m.Counters().HighScore != 0 {
		t.Errorf("high score = %d, want 0", m.Counters().HighScore)
	}
}

func TestModelStartAndFrame(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, FrameMsg{})
	if m.Counters().Score != 0 {
		t.Error("idle frames should not score")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Game().Phase() != rundash.PhaseRunning {
		t.Fatalf("phase = %v, want running", m.Game().Phase())
	}

	m, cmd := update(t, m, FrameMsg{})
	if cmd == nil {
		t.Error("frame should schedule the next frame")
	}
	if m.Counters().Score != 1 {
		t.Errorf("score = %d, want 1 after one frame", m.Counters().Score)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelHeldMovement(t *testing.T) {
	m := newTestModel(t, nil)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.clock = func() time.Time { return t0 }

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	m, cmd := update(t, m, InputTickMsg(t0.Add(10*time.Millisecond)))
	if cmd == nil {
		t.Error("input tick should schedule the next poll")
	}
	if !m.held.Held(core.ActionRight) {
		t.Fatal("right should be held within the timeout")
	}

	// Without a repeat the key is released after the hold timeout.
	m, _ = update(t, m, InputTickMsg(t0.Add(200*time.Millisecond)))
	if m.held.Held(core.ActionRight) {
		t.Error("right should expire after the hold timeout")
	}
}

func TestModelPollMovesPlayer(t *testing.T) {
	m := newTestModel(t, nil)
	t0 := time.Now()
	m.clock = func() time.Time { return t0 }
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	before := m.View()
	m, _ = update(t, m, runeKey('a'))
	for i := 0; i < 20; i++ {
		m, _ = update(t, m, InputTickMsg(t0))
	}

	if m.View() == before {
		t.Error("holding left should change the picture")
	}
}

func TestModelPersistsNewHighScore(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(t, store)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	for i := 0; i < 50000 && m.Game().Phase() == rundash.PhaseRunning; i++ {
		m, _ = update(t, m, FrameMsg{})
	}
	if m.Game().Phase() != rundash.PhaseStopped {
		t.Fatal("run never ended")
	}

	score := m.Counters().Score
	if score > 0 {
		if len(store.saves) != 1 || store.saves[0] != score {
			t.Errorf("saves = %v, want [%d]", store.saves, score)
		}
	}

	// Further frames after game over save nothing.
	saved := len(store.saves)
	m, _ = update(t, m, FrameMsg{})
	if len(store.saves) != saved {
		t.Error("high score saved twice")
	}
}

func TestModelSaveErrorKeepsRunning(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	m := newTestModel(t, store)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	for i := 0; i < 50000 && m.Game().Phase() == rundash.PhaseRunning; i++ {
		m, _ = update(t, m, FrameMsg{})
	}

	// The in-memory best still updates even if persisting fails.
	if m.Counters().HighScore != m.Counters().Score {
		t.Errorf("high = %d, score = %d", m.Counters().HighScore, m.Counters().Score)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &fakeStore{high: 42})

	view := m.View()

	for _, want := range []string{"Sports Rundash", "Score:", "High Score:", "42", "Press Enter to start", "jump"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, want 24", lines)
	}
}

func TestModelGameOverView(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 50000 && m.Game().Phase() == rundash.PhaseRunning; i++ {
		m, _ = update(t, m, FrameMsg{})
	}

	view := m.View()
	for _, want := range []string{"G a m e   O v e r", "Score:", "High Score:"} {
		if !strings.Contains(view, want) {
			t.Errorf("game over view missing %q", want)
		}
	}

	// Enter starts the next run from the game over screen.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Game().Phase() != rundash.PhaseRunning || m.Counters().Score != 0 {
		t.Errorf("phase=%v score=%d after restart", m.Game().Phase(), m.Counters().Score)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m := NewModel(Options{
		Config:        testConfig(),
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99},
		ScreenshotDir: dir,
	})
	m.clock = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("screenshot should not return a command")
	}

	data, err := os.ReadFile(filepath.Join(dir, "rundash_20240309_140507.txt"))
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	if lines := strings.Split(string(data), "\n"); len(lines) != 22 {
		t.Errorf("screenshot has %d lines, want 22", len(lines))
	}
	if m.Game().Phase() != rundash.PhaseIdle {
		t.Error("screenshot should not touch the game")
	}
}

func TestModelScreenshotDisabled(t *testing.T) {
	m := newTestModel(t, nil)
	if path := m.saveScreenshot(); path != "" {
		t.Errorf("saveScreenshot() = %q with no directory", path)
	}
}

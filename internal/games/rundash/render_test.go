package rundash

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/rundash/internal/core"
)

// recorder is a Canvas that logs every call.
type recorder struct {
	ops   []string
	texts []string
}

func (r *recorder) FillGradient(top, bottom core.Color) {
	r.ops = append(r.ops, "gradient")
}

func (r *recorder) FillRect(x, y, w, h float64, c core.Color) {
	r.ops = append(r.ops, fmt.Sprintf("rect %s", c))
}

func (r *recorder) FillTriangle(x0, y0, x1, y1, x2, y2 float64, c core.Color) {
	r.ops = append(r.ops, fmt.Sprintf("triangle %s", c))
}

func (r *recorder) FillCircle(cx, cy, rad float64, c core.Color) {
	r.ops = append(r.ops, fmt.Sprintf("circle %s", c))
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, c core.Color) {
	r.ops = append(r.ops, fmt.Sprintf("line %s", c))
}

func (r *recorder) Overlay(c core.Color, alpha float64) {
	r.ops = append(r.ops, fmt.Sprintf("overlay %.1f", alpha))
}

func (r *recorder) Text(cx, cy float64, s string, size TextSize, c core.Color) {
	r.ops = append(r.ops, "text")
	r.texts = append(r.texts, s)
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, op := range r.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

func (r *recorder) indexOf(op string) int {
	for i, o := range r.ops {
		if o == op {
			return i
		}
	}
	return -1
}

func TestRenderOrder(t *testing.T) {
	g := newTestGame(t)
	var r recorder
	g.Render(&r)

	if len(r.ops) == 0 || r.ops[0] != "gradient" {
		t.Fatalf("first op = %v, want gradient", r.ops)
	}

	mountain := r.indexOf("triangle " + MountainColor.String())
	platform := r.indexOf("rect " + PlatformTop.String())
	coin := r.indexOf("circle " + CoinColor.String())
	obstacle := r.indexOf("rect " + ObstacleBody.String())
	player := r.indexOf("rect " + PlayerBody.String())

	order := []int{mountain, platform, coin, obstacle, player}
	for i, idx := range order {
		if idx < 0 {
			t.Fatalf("layer %d missing from %v", i, r.ops)
		}
		if i > 0 && idx <= order[i-1] {
			t.Errorf("layer %d drawn at %d, before layer %d at %d", i, idx, i-1, order[i-1])
		}
	}
}

func TestRenderEntityCounts(t *testing.T) {
	g := newTestGame(t)
	g.coins[0].Collected = true
	g.coins[5].Collected = true

	var r recorder
	g.Render(&r)

	if n := r.count("triangle " + MountainColor.String()); n != 5 {
		t.Errorf("mountains = %d, want 5", n)
	}
	if n := r.count("rect " + PlatformTop.String()); n != 10 {
		t.Errorf("platforms = %d, want 10", n)
	}
	if n := r.count("circle " + CoinColor.String()); n != 18 {
		t.Errorf("coins = %d, want 18 (collected ones hidden)", n)
	}
	if n := r.count("rect " + ObstacleBody.String()); n != 8 {
		t.Errorf("obstacles = %d, want 8", n)
	}
	if n := r.count("rect " + StarColor.String()); n < 50 {
		t.Errorf("white rects = %d, want at least 50 stars", n)
	}
	if n := r.count("overlay"); n != 0 {
		t.Errorf("overlay drawn %d times outside game over", n)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t)
	g.SetHighScore(300)
	g.Start()
	g.score = 120
	g.phase = PhaseStopped

	var r recorder
	g.Render(&r)

	overlay := r.indexOf("overlay 0.7")
	if overlay < 0 {
		t.Fatal("game over overlay missing")
	}
	if overlay < r.indexOf("rect "+PlayerBody.String()) {
		t.Error("overlay must be drawn over the player")
	}

	want := []string{"Game Over", "Score: 120", "High Score: 300"}
	if !reflect.DeepEqual(r.texts, want) {
		t.Errorf("texts = %q, want %q", r.texts, want)
	}
}

func TestRenderIsPure(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	for i := 0; i < 5; i++ {
		g.Update()
	}
	state, player := g.State(), g.player
	obstacles := append([]Obstacle(nil), g.obstacles...)

	var a, b recorder
	g.Render(&a)
	g.Render(&b)

	if !reflect.DeepEqual(a.ops, b.ops) {
		t.Error("rendering the same state twice produced different output")
	}
	if g.State() != state || g.player != player || !reflect.DeepEqual(g.obstacles, obstacles) {
		t.Error("Render mutated the game")
	}
}

func TestRenderEmptyViewport(t *testing.T) {
	g := newTestGame(t)
	g.Resize(core.Viewport{})

	var r recorder
	g.Render(&r)

	if len(r.ops) != 0 {
		t.Errorf("empty viewport drew %d ops", len(r.ops))
	}
}

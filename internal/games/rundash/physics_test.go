package rundash

import (
	"testing"

	"github.com/vovakirdan/rundash/internal/config"
)

// runningGame returns a started game with no entities except the player,
// who stands at (400, 380) in an 800x480 viewport.
func runningGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	g.Start()
	emptyWorld(g)
	return g
}

func TestUpdateNoopUnlessRunning(t *testing.T) {
	for _, phase := range []Phase{PhaseIdle, PhaseStopped} {
		g := newTestGame(t)
		g.phase = phase
		before := g.player
		obstacleY := g.obstacles[0].Y

		res := g.Update()

		if g.player != before || g.obstacles[0].Y != obstacleY {
			t.Errorf("Update() in %v changed the world", phase)
		}
		if res.State.Score != 0 || res.NewHighScore {
			t.Errorf("Update() in %v = %+v", phase, res)
		}
	}
}

func TestSurvivalScore(t *testing.T) {
	g := runningGame(t)
	for i := 1; i <= 10; i++ {
		res := g.Update()
		if res.State.Score != i {
			t.Fatalf("frame %d score = %d, want %d", i, res.State.Score, i)
		}
	}
}

func TestGravityAndFloorClamp(t *testing.T) {
	g := runningGame(t)

	g.Update()
	if g.player.VelocityY != 0.5 || g.player.Y != 380.5 {
		t.Errorf("after one frame vy=%v y=%v, want 0.5/380.5", g.player.VelocityY, g.player.Y)
	}

	for i := 0; i < 200; i++ {
		g.Update()
		if g.player.Y > 420 {
			t.Fatalf("frame %d: player y = %v below floor", i, g.player.Y)
		}
	}
	if g.player.Y != 420 || g.player.VelocityY != 0 || g.player.Jumping {
		t.Errorf("resting player = %+v, want y=420 vy=0 grounded", g.player)
	}
}

func TestFloorClampAfterPushDown(t *testing.T) {
	g := runningGame(t)
	g.player.Y = 470
	g.player.Jumping = true

	g.Update()

	if g.player.Y != 420 || g.player.Jumping {
		t.Errorf("player = %+v, want clamped to 420 and grounded", g.player)
	}
}

func TestWallClamp(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		wantX float64
	}{
		{"left wall", 5, 20},
		{"right wall", 795, 780},
		{"inside", 300, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := runningGame(t)
			g.player.X = tt.x
			g.Update()
			if g.player.X != tt.wantX {
				t.Errorf("X = %v, want %v", g.player.X, tt.wantX)
			}
		})
	}
}

func TestPlatformLanding(t *testing.T) {
	g := runningGame(t)
	g.platforms = append(g.platforms, Platform{X: 350, Y: 445, Width: 100, Height: 20})
	g.player.Jumping = true

	g.Update()

	if g.player.Y != 385 {
		t.Errorf("player y = %v, want 385 (standing on the platform)", g.player.Y)
	}
	if g.player.VelocityY != 0 || g.player.Jumping {
		t.Errorf("player vy=%v jumping=%v, want 0/false", g.player.VelocityY, g.player.Jumping)
	}
}

func TestPlatformFirstMatchInListOrder(t *testing.T) {
	tests := []struct {
		name      string
		platforms []Platform
		want      float64
	}{
		{"lower first", []Platform{{X: 350, Y: 445, Width: 100, Height: 20}, {X: 350, Y: 441, Width: 100, Height: 20}}, 385},
		{"higher first", []Platform{{X: 350, Y: 441, Width: 100, Height: 20}, {X: 350, Y: 445, Width: 100, Height: 20}}, 381},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := runningGame(t)
			g.platforms = append(g.platforms, tt.platforms...)

			g.Update()

			// The snap zeroes the velocity, so later platforms no longer match.
			if g.player.Y != tt.want {
				t.Errorf("player y = %v, want %v", g.player.Y, tt.want)
			}
		})
	}
}

func TestPlatformIgnoredWhileRising(t *testing.T) {
	g := runningGame(t)
	g.platforms = append(g.platforms, Platform{X: 350, Y: 375, Width: 100, Height: 20})
	g.player.Y = 330
	g.Jump()

	g.Update()

	if g.player.VelocityY >= 0 {
		t.Errorf("rising player was stopped by a platform: vy = %v", g.player.VelocityY)
	}
}

func TestPlatformNeedsHorizontalOverlap(t *testing.T) {
	g := runningGame(t)
	g.platforms = append(g.platforms, Platform{X: 500, Y: 445, Width: 100, Height: 20})

	g.Update()

	if g.player.Y != 380.5 {
		t.Errorf("player y = %v, want 380.5 (still falling)", g.player.Y)
	}
}

func TestCoinCollection(t *testing.T) {
	g := runningGame(t)
	g.coins = append(g.coins, Coin{X: 400, Y: 400, Size: 20})

	res := g.Update()

	if !g.coins[0].Collected {
		t.Fatal("coin under the player should be collected")
	}
	if res.State.Coins != 1 {
		t.Errorf("coins = %d, want 1", res.State.Coins)
	}
	if res.State.Score != 101 {
		t.Errorf("score = %d, want 101 (coin + survival)", res.State.Score)
	}

	res = g.Update()
	if res.State.Coins != 1 || res.State.Score != 102 {
		t.Errorf("collected coin counted twice: %+v", res.State)
	}
}

func TestCoinOutOfReach(t *testing.T) {
	g := runningGame(t)
	g.coins = append(g.coins, Coin{X: 100, Y: 100, Size: 20})

	g.Update()

	if g.coins[0].Collected || g.coinCount != 0 {
		t.Error("distant coin should not be collected")
	}
}

func TestObstacleCollisionEndsRun(t *testing.T) {
	g := runningGame(t)
	g.score = 50
	g.obstacles = append(g.obstacles, Obstacle{X: 390, Y: 390, Size: 30, Speed: 1})

	res := g.Update()

	if g.Phase() != PhaseStopped || !res.State.GameOver || res.State.Running {
		t.Fatalf("phase = %v state = %+v, want game over", g.Phase(), res.State)
	}
	if res.State.Score != 50 {
		t.Errorf("score = %d, want 50 (no survival point on the fatal frame)", res.State.Score)
	}
	if !res.NewHighScore || res.State.HighScore != 50 {
		t.Errorf("NewHighScore=%v high=%d, want true/50", res.NewHighScore, res.State.HighScore)
	}

	// The world is frozen after game over.
	y := g.obstacles[0].Y
	g.Update()
	if g.obstacles[0].Y != y {
		t.Error("obstacle moved after game over")
	}
}

func TestObstacleCollisionKeepsBetterHighScore(t *testing.T) {
	g := runningGame(t)
	g.SetHighScore(1000)
	g.score = 50
	g.obstacles = append(g.obstacles, Obstacle{X: 390, Y: 390, Size: 30, Speed: 1})

	res := g.Update()

	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if res.NewHighScore || res.State.HighScore != 1000 {
		t.Errorf("NewHighScore=%v high=%d, want false/1000", res.NewHighScore, res.State.HighScore)
	}
}

func TestFatalFrameMovesEveryObstacle(t *testing.T) {
	g := runningGame(t)
	g.obstacles = append(g.obstacles,
		Obstacle{X: 390, Y: 390, Size: 30, Speed: 1},
		Obstacle{X: 10, Y: 10, Size: 30, Speed: 4},
		Obstacle{X: 600, Y: 479, Size: 30, Speed: 5},
	)

	res := g.Update()

	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if res.State.Score != 0 {
		t.Errorf("score = %d, want 0 (no survival point on the fatal frame)", res.State.Score)
	}
	if g.obstacles[1].Y != 14 {
		t.Errorf("obstacle 1 y = %v, want 14", g.obstacles[1].Y)
	}
	if g.obstacles[2].Y != -50 {
		t.Errorf("obstacle 2 y = %v, want -50 (wrapped)", g.obstacles[2].Y)
	}
	if x := g.obstacles[2].X; x < 0 || x >= 800 {
		t.Errorf("wrapped obstacle x = %v, want within [0, 800)", x)
	}
}

func TestObstacleWrap(t *testing.T) {
	g := runningGame(t)
	g.obstacles = append(g.obstacles, Obstacle{X: 50, Y: 478, Size: 30, Speed: 5})

	for i := 0; i < 20; i++ {
		g.obstacles[0].Y = 478
		g.Update()

		o := g.obstacles[0]
		if o.Y != -50 {
			t.Fatalf("wrapped obstacle y = %v, want -50", o.Y)
		}
		if o.X < 0 || o.X >= 800 {
			t.Fatalf("wrapped obstacle x = %v, want [0,800)", o.X)
		}
	}
	if g.Phase() != PhaseRunning {
		t.Error("wrapping obstacle should not end the run")
	}
}

func TestObstacleFallsAtConstantSpeed(t *testing.T) {
	g := runningGame(t)
	g.obstacles = append(g.obstacles, Obstacle{X: 50, Y: 0, Size: 30, Speed: 3})

	for i := 1; i <= 5; i++ {
		g.Update()
		if want := float64(3 * i); g.obstacles[0].Y != want {
			t.Fatalf("frame %d y = %v, want %v", i, g.obstacles[0].Y, want)
		}
	}
}

func TestCountersNeverDecreaseDuringRun(t *testing.T) {
	g := New(config.DefaultRundashConfig(), testView, 7)
	g.Start()

	prevScore, prevCoins := 0, 0
	for i := 0; i < 2000; i++ {
		if i%30 == 0 {
			g.Jump()
		}
		res := g.Update()
		if res.State.Score < prevScore || res.State.Coins < prevCoins {
			t.Fatalf("frame %d counters went down: %+v", i, res.State)
		}
		prevScore, prevCoins = res.State.Score, res.State.Coins
		if res.State.GameOver {
			break
		}

		p := g.player
		if p.X-p.Width/2 < 0 || p.X+p.Width/2 > 800 || p.Y > 480-p.Height {
			t.Fatalf("frame %d player escaped the viewport: %+v", i, p)
		}
	}
}

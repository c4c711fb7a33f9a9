package rundash

import "github.com/vovakirdan/rundash/internal/core"

// landingTolerance is how far above a platform top the feet may be and
// still count as landing.
const landingTolerance = 5

// Update advances the run by one frame. It is a no-op unless running.
func (g *Game) Update() core.StepResult {
	if g.phase != PhaseRunning {
		return core.StepResult{State: g.State()}
	}

	g.frame++
	g.applyGravity()
	g.landOnPlatforms()
	g.clampToFloor()
	g.clampToWalls()
	g.collectCoins()

	if g.moveObstacles() {
		newHigh := g.endRun()
		return core.StepResult{State: g.State(), NewHighScore: newHigh}
	}

	// Survival bonus
	g.score++

	return core.StepResult{State: g.State()}
}

func (g *Game) applyGravity() {
	g.player.VelocityY += g.player.Gravity
	g.player.Y += g.player.VelocityY
}

// landOnPlatforms snaps a falling player onto any platform whose top their
// feet just crossed. Platforms are checked in list order with no early
// exit; a snap zeroes the velocity, which disarms the later checks.
func (g *Game) landOnPlatforms() {
	for _, p := range g.platforms {
		pl := &g.player
		feet := pl.Bottom()
		overlapsX := pl.X+pl.Width/2 > p.X && pl.X-pl.Width/2 < p.X+p.Width
		crossing := feet+landingTolerance > p.Y && feet < p.Y+p.Height
		if overlapsX && crossing && pl.VelocityY > 0 {
			pl.Y = p.Y - pl.Height
			pl.VelocityY = 0
			pl.Jumping = false
		}
	}
}

func (g *Game) clampToFloor() {
	floor := g.view.H - g.player.Height
	if g.player.Y > floor {
		g.player.Y = floor
		g.player.VelocityY = 0
		g.player.Jumping = false
	}
}

func (g *Game) clampToWalls() {
	half := g.player.Width / 2
	if g.player.X-half < 0 {
		g.player.X = half
	}
	if g.player.X+half > g.view.W {
		g.player.X = g.view.W - half
	}
}

func (g *Game) collectCoins() {
	box := g.player.Box()
	for i := range g.coins {
		c := &g.coins[i]
		if c.Collected || !box.Overlaps(c.Box()) {
			continue
		}
		c.Collected = true
		g.coinCount++
		g.score += g.cfg.World.CoinValue
	}
}

// moveObstacles drops every obstacle and recycles the ones below the
// bottom edge, then reports whether any of them hit the player.
func (g *Game) moveObstacles() bool {
	for i := range g.obstacles {
		o := &g.obstacles[i]
		o.Y += o.Speed
		if o.Y > g.view.H {
			o.Y = g.cfg.World.ObstacleRespawnY
			o.X = g.rng.Float64() * g.view.W
		}
	}

	box := g.player.Box()
	for _, o := range g.obstacles {
		if box.Overlaps(o.Box()) {
			return true
		}
	}
	return false
}

// endRun stops the run and records a new best score.
// Returns true if the high score was beaten.
func (g *Game) endRun() bool {
	g.phase = PhaseStopped
	if g.score > g.highScore {
		g.highScore = g.score
		return true
	}
	return false
}

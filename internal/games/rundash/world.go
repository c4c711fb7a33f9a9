package rundash

// initialize repopulates every entity list from the RNG, bounded by the
// current viewport, and zeroes the run counters. The high score survives.
func (g *Game) initialize() {
	w, h := g.view.W, g.view.H
	world := g.cfg.World

	g.platforms = g.platforms[:0]
	for i := 0; i < world.Platforms; i++ {
		g.platforms = append(g.platforms, Platform{
			X:      g.rng.Float64() * w,
			Y:      h - world.PlatformBaseOffset - float64(i)*world.PlatformSpacing,
			Width:  world.PlatformMinWidth + g.rng.Float64()*world.PlatformWidthJitter,
			Height: world.PlatformHeight,
		})
	}

	g.coins = g.coins[:0]
	for i := 0; i < world.Coins; i++ {
		g.coins = append(g.coins, Coin{
			X:    g.rng.Float64() * w,
			Y:    g.rng.Float64() * h / 2,
			Size: world.CoinSize,
		})
	}

	g.obstacles = g.obstacles[:0]
	for i := 0; i < world.Obstacles; i++ {
		g.obstacles = append(g.obstacles, Obstacle{
			X:     g.rng.Float64() * w,
			Y:     g.rng.Float64() * h / 1.5,
			Size:  world.ObstacleSize,
			Speed: (world.ObstacleMinSpeed + g.rng.Float64()*world.ObstacleSpeedJitter) * world.SpeedMultiplier,
		})
	}

	pc := g.cfg.Player
	g.player = Player{
		X:         w / 2,
		Y:         h - pc.StartOffset,
		Width:     pc.Width,
		Height:    pc.Height,
		Speed:     pc.Speed,
		JumpPower: pc.JumpPower,
		Gravity:   pc.Gravity,
	}

	g.score = 0
	g.coinCount = 0
	g.frame = 0
	g.sceneSeed = g.rng.Int63()
}

package rundash

// Display receives the three on-screen counters.
type Display interface {
	SetScore(score int)
	SetCoins(coins int)
	SetHighScore(score int)
}

// Sync pushes the current counters to d. Front ends call it after every
// Update and after Start/Reset, keeping presentation out of the game logic.
func (g *Game) Sync(d Display) {
	d.SetScore(g.score)
	d.SetCoins(g.coinCount)
	d.SetHighScore(g.highScore)
}

// Counters is a Display that just remembers the last values it was given.
type Counters struct {
	Score     int
	Coins     int
	HighScore int
}

func (c *Counters) SetScore(score int)     { c.Score = score }
func (c *Counters) SetCoins(coins int)     { c.Coins = coins }
func (c *Counters) SetHighScore(score int) { c.HighScore = score }

package rundash

import "github.com/vovakirdan/rundash/internal/core"

// Player is the controllable sprite.
// X is the horizontal center and Y the top edge, in viewport pixels.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // horizontal/vertical displacement per input poll
	JumpPower     float64
	VelocityY     float64
	Gravity       float64
	Jumping       bool
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X-p.Width/2, p.Y, p.Width, p.Height)
}

// Bottom returns the y-coordinate of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.Height
}

// Platform is a static ledge the player can land on.
type Platform struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Box returns the platform's bounds.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Coin is a collectible. Collected flips to true once per run.
type Coin struct {
	X, Y      float64 // Center
	Size      float64
	Collected bool
}

// Box returns the coin's pickup box.
func (c Coin) Box() core.Box {
	return core.CenteredBox(c.X, c.Y, c.Size, c.Size)
}

// Obstacle falls at a constant speed and recycles at the top.
type Obstacle struct {
	X, Y  float64 // Top-left corner
	Size  float64
	Speed float64
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Size, o.Size)
}

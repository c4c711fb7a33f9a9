package rundash

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/rundash/internal/core"
)

// Palette
var (
	SkyTop         = core.Hex("#1E40AF")
	SkyBottom      = core.Hex("#1E3A8A")
	StarColor      = core.Hex("#FFFFFF")
	MountainColor  = core.Hex("#374151")
	PlatformTop    = core.Hex("#10B981")
	PlatformSide   = core.Hex("#0D966E")
	CoinColor      = core.Hex("#FBBF24")
	CoinShine      = core.Hex("#FDE68A")
	ObstacleBody   = core.Hex("#EF4444")
	ObstacleCap    = core.Hex("#DC2626")
	ObstacleSpikes = core.Hex("#991B1B")
	PlayerBody     = core.Hex("#3B82F6")
	PlayerFace     = core.Hex("#FFFFFF")
	OverlayColor   = core.Hex("#000000")
	TextColor      = core.Hex("#FFFFFF")
)

const (
	platformDepth   = 10 // extrusion of the side face
	platformTick    = 10 // spacing of the top pattern
	spikeWidth      = 10
	spikeHeight     = 8
	eyeSize         = 10
	eyeOffsetY      = 10
	mouthOffsetY    = 30
	overlayAlpha    = 0.7
	maxStarSize     = 2
	mountainBaseDiv = 2 // mountains sit on the horizontal midline
)

// Render draws the current state back to front. It never mutates the game.
func (g *Game) Render(c Canvas) {
	if g.view.Empty() {
		return
	}
	g.drawBackground(c)
	g.drawPlatforms(c)
	g.drawCoins(c)
	g.drawObstacles(c)
	g.drawPlayer(c)
	if g.phase == PhaseStopped {
		g.drawGameOver(c)
	}
}

func (g *Game) drawBackground(c Canvas) {
	w, h := g.view.W, g.view.H
	c.FillGradient(SkyTop, SkyBottom)

	// Stars twinkle from frame to frame but are fixed for a given state.
	stars := rand.New(rand.NewSource(g.sceneSeed + int64(g.frame)))
	for i := 0; i < g.cfg.Scenery.Stars; i++ {
		x := stars.Float64() * w
		y := stars.Float64() * h / 2
		size := stars.Float64() * maxStarSize
		c.FillRect(x, y, size, size, StarColor)
	}

	n := g.cfg.Scenery.Mountains
	if n <= 0 {
		return
	}
	peaks := rand.New(rand.NewSource(g.sceneSeed))
	base := h / mountainBaseDiv
	span := w / float64(n)
	for i := 0; i < n; i++ {
		height := g.cfg.Scenery.MountainMinHeight + peaks.Float64()*g.cfg.Scenery.MountainHeightJitter
		left := float64(i) * span
		c.FillTriangle(left, base, left+span/2, base-height, left+span, base, MountainColor)
	}
}

func (g *Game) drawPlatforms(c Canvas) {
	for _, p := range g.platforms {
		c.FillRect(p.X, p.Y, p.Width, p.Height, PlatformTop)

		// Extruded side face
		c.FillTriangle(p.X, p.Y, p.X+platformDepth, p.Y+platformDepth, p.X+platformDepth, p.Y+p.Height+platformDepth, PlatformSide)
		c.FillTriangle(p.X, p.Y, p.X+platformDepth, p.Y+p.Height+platformDepth, p.X, p.Y+p.Height, PlatformSide)

		for i := 0.0; i < p.Width; i += platformTick {
			c.StrokeLine(p.X+i, p.Y, p.X+i, p.Y+p.Height, 1, PlatformSide)
		}
	}
}

func (g *Game) drawCoins(c Canvas) {
	for _, coin := range g.coins {
		if coin.Collected {
			continue
		}
		c.FillCircle(coin.X, coin.Y, coin.Size/2, CoinColor)
		c.FillCircle(coin.X-coin.Size/4, coin.Y-coin.Size/4, coin.Size/6, CoinShine)
	}
}

func (g *Game) drawObstacles(c Canvas) {
	for _, o := range g.obstacles {
		c.FillRect(o.X, o.Y, o.Size, o.Size, ObstacleBody)
		c.FillTriangle(o.X, o.Y, o.X+o.Size/2, o.Y-o.Size/2, o.X+o.Size, o.Y, ObstacleCap)

		for i := 0.0; i < o.Size; i += spikeWidth {
			c.StrokeLine(o.X+i, o.Y, o.X+i+spikeWidth/2, o.Y-spikeHeight, 2, ObstacleSpikes)
			c.StrokeLine(o.X+i+spikeWidth/2, o.Y-spikeHeight, o.X+i+spikeWidth, o.Y, 2, ObstacleSpikes)
		}
	}
}

func (g *Game) drawPlayer(c Canvas) {
	p := g.player
	left := p.X - p.Width/2
	c.FillRect(left, p.Y, p.Width, p.Height, PlayerBody)

	c.FillRect(p.X-p.Width/4, p.Y+eyeOffsetY, eyeSize, eyeSize, PlayerFace)
	c.FillRect(p.X+p.Width/4-eyeSize, p.Y+eyeOffsetY, eyeSize, eyeSize, PlayerFace)

	c.StrokeLine(p.X-p.Width/4, p.Y+mouthOffsetY, p.X+p.Width/4, p.Y+mouthOffsetY, 1, PlayerFace)
}

func (g *Game) drawGameOver(c Canvas) {
	cx, cy := g.view.W/2, g.view.H/2
	c.Overlay(OverlayColor, overlayAlpha)
	c.Text(cx, cy-40, "Game Over", TextTitle, TextColor)
	c.Text(cx, cy+20, fmt.Sprintf("Score: %d", g.score), TextBody, TextColor)
	c.Text(cx, cy+60, fmt.Sprintf("High Score: %d", g.highScore), TextBody, TextColor)
}

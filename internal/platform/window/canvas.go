package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/rundash/internal/core"
	"github.com/vovakirdan/rundash/internal/games/rundash"
)

// Debug font metrics
const (
	glyphW     = 6
	glyphH     = 16
	titleScale = 2
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub image of whiteImage.
	// Use whiteSubImage at DrawTriangles instead of whiteImage in order to avoid bleeding edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas draws onto an ebiten image. The play field occupies the top-left
// W x H pixels of the destination.
type Canvas struct {
	dst     *ebiten.Image
	w, h    float32
	scratch *ebiten.Image // text is printed here, then scaled and tinted
}

var _ rundash.Canvas = (*Canvas)(nil)

// NewCanvas creates an unbound canvas; call Bind before drawing.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Bind points the canvas at dst for the next frame.
func (c *Canvas) Bind(dst *ebiten.Image, view core.Viewport) {
	c.dst = dst
	c.w, c.h = float32(view.W), float32(view.H)
}

func toRGBA(c core.Color) color.RGBA {
	r, g, b := c.Components()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func vertex(x, y float32, c core.Color) ebiten.Vertex {
	r, g, b := c.Components()
	return ebiten.Vertex{
		DstX: x, DstY: y,
		SrcX: 1, SrcY: 1,
		ColorR: float32(r) / 0xff,
		ColorG: float32(g) / 0xff,
		ColorB: float32(b) / 0xff,
		ColorA: 1,
	}
}

// FillGradient paints the field with a vertical gradient.
func (c *Canvas) FillGradient(top, bottom core.Color) {
	vs := []ebiten.Vertex{
		vertex(0, 0, top),
		vertex(c.w, 0, top),
		vertex(0, c.h, bottom),
		vertex(c.w, c.h, bottom),
	}
	c.dst.DrawTriangles(vs, []uint16{0, 1, 2, 1, 2, 3}, whiteSubImage, nil)
}

func (c *Canvas) FillRect(x, y, w, h float64, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), toRGBA(col), false)
}

func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 float64, col core.Color) {
	vs := []ebiten.Vertex{
		vertex(float32(x0), float32(y0), col),
		vertex(float32(x1), float32(y1), col),
		vertex(float32(x2), float32(y2), col),
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(vs, []uint16{0, 1, 2}, whiteSubImage, op)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), toRGBA(col), true)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col core.Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), toRGBA(col), true)
}

// Overlay covers the field with a translucent rectangle.
func (c *Canvas) Overlay(col core.Color, alpha float64) {
	r, g, b := col.Components()
	a := uint8(core.ClampF(alpha, 0, 1) * 0xff)
	vector.DrawFilledRect(c.dst, 0, 0, c.w, c.h, color.NRGBA{R: r, G: g, B: b, A: a}, false)
}

// Text prints s with the debug font, centered on cx. Titles are drawn at
// double size.
func (c *Canvas) Text(cx, cy float64, s string, size rundash.TextSize, col core.Color) {
	scale := 1.0
	if size == rundash.TextTitle {
		scale = titleScale
	}

	w := len([]rune(s)) * glyphW
	if w == 0 {
		return
	}
	if c.scratch == nil || c.scratch.Bounds().Dx() < w {
		c.scratch = ebiten.NewImage(w, glyphH)
	}
	c.scratch.Clear()
	ebitenutil.DebugPrintAt(c.scratch, s, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(w)*scale/2, cy-glyphH*scale/2)
	op.ColorScale.ScaleWithColor(toRGBA(col))
	c.dst.DrawImage(c.scratch, op)
}

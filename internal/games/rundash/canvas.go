package rundash

import "github.com/vovakirdan/rundash/internal/core"

// TextSize is a hint for how prominent a line of text should be.
type TextSize int

const (
	TextBody TextSize = iota
	TextTitle
)

// Canvas is the render context a front end hands to Render.
// Coordinates are viewport pixels with y growing downward.
type Canvas interface {
	// FillGradient paints the whole surface with a vertical gradient.
	FillGradient(top, bottom core.Color)
	FillRect(x, y, w, h float64, c core.Color)
	FillTriangle(x0, y0, x1, y1, x2, y2 float64, c core.Color)
	FillCircle(cx, cy, r float64, c core.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c core.Color)
	// Overlay darkens or tints everything drawn so far.
	Overlay(c core.Color, alpha float64)
	// Text draws a line horizontally centered on cx with its baseline near cy.
	Text(cx, cy float64, s string, size TextSize, c core.Color)
}

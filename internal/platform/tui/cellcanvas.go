package tui

import (
	"math"

	"github.com/vovakirdan/rundash/internal/core"
	"github.com/vovakirdan/rundash/internal/games/rundash"
)

// Glyphs used when a shape is too small to cover any cell center.
const (
	glyphSpeck    = '·'
	glyphBlock    = '▪'
	glyphDot      = '•'
	glyphTriangle = '▴'
)

// CellCanvas rasterizes pixel-space drawing onto a core.Screen.
//
// A cell takes a shape's color when the shape covers the cell's center
// point. Shapes that miss every center still show up as a single glyph in
// the cell under their own center, so stars and highlights survive the
// coarse grid.
type CellCanvas struct {
	screen *core.Screen
	cellW  float64 // pixels per column
	cellH  float64 // pixels per row
}

// NewCellCanvas wraps screen, mapping each cell to a cellW x cellH pixel area.
func NewCellCanvas(screen *core.Screen, cellW, cellH float64) *CellCanvas {
	return &CellCanvas{
		screen: screen,
		cellW:  math.Max(cellW, 1),
		cellH:  math.Max(cellH, 1),
	}
}

var _ rundash.Canvas = (*CellCanvas)(nil)

// center returns the pixel coordinates of a cell's center.
func (cc *CellCanvas) center(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * cc.cellW, (float64(row) + 0.5) * cc.cellH
}

// cellAt returns the cell containing a pixel.
func (cc *CellCanvas) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / cc.cellW)), int(math.Floor(y / cc.cellH))
}

// span returns the cells overlapping a pixel bounding box, clipped to the
// screen. The result is empty when nothing is on screen.
func (cc *CellCanvas) span(minX, minY, maxX, maxY float64) core.Rect {
	c0, r0 := cc.cellAt(minX, minY)
	c1, r1 := cc.cellAt(maxX, maxY)
	cells := core.NewRect(c0, r0, c1-c0+1, r1-r0+1)
	return cells.Intersect(cc.bounds())
}

func (cc *CellCanvas) bounds() core.Rect {
	return core.NewRect(0, 0, cc.screen.Width(), cc.screen.Height())
}

// fill paints every cell in the bounding box whose center satisfies inside.
// Returns the number of cells painted.
func (cc *CellCanvas) fill(minX, minY, maxX, maxY float64, c core.Color, inside func(px, py float64) bool) int {
	cells := cc.span(minX, minY, maxX, maxY)
	n := 0
	for row := cells.Y; row < cells.Bottom(); row++ {
		for col := cells.X; col < cells.Right(); col++ {
			if inside(cc.center(col, row)) {
				cc.screen.Paint(col, row, c)
				n++
			}
		}
	}
	return n
}

// speck marks a shape that covered no cell center.
func (cc *CellCanvas) speck(x, y float64, r rune, c core.Color) {
	col, row := cc.cellAt(x, y)
	cc.screen.SetGlyph(col, row, r, c)
}

// FillGradient paints every cell with a vertical gradient.
func (cc *CellCanvas) FillGradient(top, bottom core.Color) {
	rows := cc.screen.Height()
	for row := 0; row < rows; row++ {
		t := 0.0
		if rows > 1 {
			t = float64(row) / float64(rows-1)
		}
		c := core.Lerp(top, bottom, t)
		for col := 0; col < cc.screen.Width(); col++ {
			cc.screen.Paint(col, row, c)
		}
	}
}

// FillRect paints an axis-aligned rectangle.
func (cc *CellCanvas) FillRect(x, y, w, h float64, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	n := cc.fill(x, y, x+w, y+h, c, func(px, py float64) bool {
		return px >= x && px < x+w && py >= y && py < y+h
	})
	if n > 0 {
		return
	}
	g := glyphBlock
	if w < cc.cellW/4 && h < cc.cellH/4 {
		g = glyphSpeck
	}
	cc.speck(x+w/2, y+h/2, g, c)
}

// FillTriangle paints a triangle given its three corners.
func (cc *CellCanvas) FillTriangle(x0, y0, x1, y1, x2, y2 float64, c core.Color) {
	area := (x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)
	if area == 0 {
		return
	}
	edge := func(ax, ay, bx, by, px, py float64) float64 {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	inside := func(px, py float64) bool {
		e0 := edge(x0, y0, x1, y1, px, py)
		e1 := edge(x1, y1, x2, y2, px, py)
		e2 := edge(x2, y2, x0, y0, px, py)
		if area < 0 {
			e0, e1, e2 = -e0, -e1, -e2
		}
		return e0 >= 0 && e1 >= 0 && e2 >= 0
	}

	minX := math.Min(x0, math.Min(x1, x2))
	maxX := math.Max(x0, math.Max(x1, x2))
	minY := math.Min(y0, math.Min(y1, y2))
	maxY := math.Max(y0, math.Max(y1, y2))
	if cc.fill(minX, minY, maxX, maxY, c, inside) == 0 {
		cc.speck((x0+x1+x2)/3, (y0+y1+y2)/3, glyphTriangle, c)
	}
}

// FillCircle paints a disc.
func (cc *CellCanvas) FillCircle(cx, cy, r float64, c core.Color) {
	if r <= 0 {
		return
	}
	n := cc.fill(cx-r, cy-r, cx+r, cy+r, c, func(px, py float64) bool {
		dx, dy := px-cx, py-cy
		return dx*dx+dy*dy <= r*r
	})
	if n == 0 {
		cc.speck(cx, cy, glyphDot, c)
	}
}

// StrokeLine draws a line of box-drawing glyphs over the cells it passes
// through. Width is ignored; a cell is the thinnest mark a terminal has.
func (cc *CellCanvas) StrokeLine(x0, y0, x1, y1, _ float64, c core.Color) {
	dx, dy := x1-x0, y1-y0
	glyph := lineGlyph(dx/cc.cellW, dy/cc.cellH)

	step := math.Min(cc.cellW, cc.cellH) / 2
	steps := int(math.Ceil(math.Hypot(dx, dy) / step))
	lastCol, lastRow := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		col, row := cc.cellAt(x0+dx*t, y0+dy*t)
		if col == lastCol && row == lastRow {
			continue
		}
		cc.screen.SetGlyph(col, row, glyph, c)
		lastCol, lastRow = col, row
	}
}

// lineGlyph picks a box-drawing rune for a direction given in cells.
func lineGlyph(dx, dy float64) rune {
	const slope = 0.414 // tan(22.5°)
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ax == 0 && ay == 0:
		return glyphSpeck
	case ay <= ax*slope:
		return '─'
	case ax <= ay*slope:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// Overlay blends every cell toward c.
func (cc *CellCanvas) Overlay(c core.Color, alpha float64) {
	cc.screen.Map(func(cell core.Cell) core.Cell {
		cell.Bg = cell.Bg.Blend(c, alpha)
		if !cell.Fg.IsDefault() {
			cell.Fg = cell.Fg.Blend(c, alpha)
		}
		return cell
	})
}

// Text writes s centered on cx in the row containing cy. Titles are
// letter-spaced to stand out.
func (cc *CellCanvas) Text(cx, cy float64, s string, size rundash.TextSize, c core.Color) {
	if size == rundash.TextTitle {
		s = letterSpace(s)
	}
	n := len([]rune(s))
	col, row := cc.cellAt(cx, cy)
	row = core.Clamp(row, 0, cc.screen.Height()-1)
	cc.screen.DrawTextColor(col-n/2, row, s, c)
}

// Callout writes s centered on the cell under (cx, cy) inside a box outline.
// The box is dropped when it would not fit on screen.
func (cc *CellCanvas) Callout(cx, cy float64, s string, c core.Color) {
	n := len([]rune(s))
	col, row := cc.cellAt(cx, cy)
	row = core.Clamp(row, 0, cc.screen.Height()-1)
	box := core.NewRect(col-n/2-2, row-1, n+4, 3)
	if box.Intersect(cc.bounds()) == box {
		cc.screen.DrawBox(box)
	}
	x, y := box.Center()
	cc.screen.DrawTextColor(x-n/2, y, s, c)
}

func letterSpace(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	out := make([]rune, 0, len(runes)*2-1)
	for i, r := range runes {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}

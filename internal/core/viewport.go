package core

import "math"

// Viewport is the drawable pixel area a game simulates in.
type Viewport struct {
	W, H float64
}

// ViewportFromWidth derives the viewport from its container width.
// Height follows the aspect ratio but never exceeds maxH.
func ViewportFromWidth(containerW, aspect, maxH float64) Viewport {
	if containerW < 0 {
		containerW = 0
	}
	return Viewport{
		W: containerW,
		H: math.Min(containerW*aspect, maxH),
	}
}

// Empty reports whether there is nothing to draw on.
func (v Viewport) Empty() bool {
	return v.W <= 0 || v.H <= 0
}

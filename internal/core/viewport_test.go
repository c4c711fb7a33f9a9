package core

import "testing"

func TestViewportFromWidth(t *testing.T) {
	tests := []struct {
		name       string
		containerW float64
		expected   Viewport
	}{
		{"80 columns at 10px", 800, Viewport{W: 800, H: 480}},
		{"height capped", 1200, Viewport{W: 1200, H: 500}},
		{"small", 300, Viewport{W: 300, H: 180}},
		{"negative", -10, Viewport{W: 0, H: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ViewportFromWidth(tc.containerW, 0.6, 500)
			if got != tc.expected {
				t.Errorf("ViewportFromWidth(%v) = %+v, expected %+v", tc.containerW, got, tc.expected)
			}
		})
	}
}

func TestViewportEmpty(t *testing.T) {
	if !(Viewport{}).Empty() {
		t.Error("zero viewport should be empty")
	}
	if (Viewport{W: 10, H: 6}).Empty() {
		t.Error("10x6 viewport should not be empty")
	}
}

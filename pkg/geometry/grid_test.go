package geometry

import (
	"math"
	"testing"
)

// TestSnapCentering tests that the grid is centered on the container rather than
// anchored at the origin: with gridSize=50 and a center phase of 40, x=158 must
// snap to 140, not 150.
func TestSnapCentering(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		center   float64
		gridSize float64
		expected float64
	}{
		{"Center phase 40", 158, 40, 50, 140},
		{"Center phase 40 (center=540)", 158, 540, 50, 140},
		{"Zero phase behaves like origin grid", 158, 500, 50, 150},
		{"Exactly on a grid line", 140, 40, 50, 140},
		{"Just below a grid line", 139, 40, 50, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snap(tt.v, tt.center, tt.gridSize)
			if math.Abs(got-tt.expected) > floatTolerance {
				t.Errorf("Snap(%f, %f, %f) = %f, want %f", tt.v, tt.center, tt.gridSize, got, tt.expected)
			}
		})
	}
}

// TestSnapDisabled tests that a non-positive grid size disables snapping.
func TestSnapDisabled(t *testing.T) {
	tests := []struct {
		name     string
		gridSize float64
	}{
		{"Zero grid size", 0},
		{"Negative grid size", -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snap(158, 40, tt.gridSize); got != 158 {
				t.Errorf("Snap with gridSize=%f = %f, want input unchanged (158)", tt.gridSize, got)
			}
		})
	}
}

// TestSnapPointPerAxis tests that snapping is applied independently per axis.
func TestSnapPointPerAxis(t *testing.T) {
	x, y := SnapPoint(158, 212, 40, 25, 50)
	if x != 140 {
		t.Errorf("SnapPoint X = %f, want 140", x)
	}
	// start = mod(25,50) = 25; offset = mod(212-25,50) = mod(187,50) = 37; 212-37 = 175
	if y != 175 {
		t.Errorf("SnapPoint Y = %f, want 175", y)
	}
}

package utils

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestPolarToScreen(t *testing.T) {
	tests := []struct {
		name         string
		r, angle     float64
		wantX, wantY float64
	}{
		{"angle 0 points right", 100, 0, 600, 300},
		{"quarter turn points down", 100, math.Pi / 2, 500, 400},
		{"half turn points left", 100, math.Pi, 400, 300},
		{"three quarters points up", 100, 3 * math.Pi / 2, 500, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := PolarToScreen(500, 300, tt.r, tt.angle)
			if math.Abs(x-tt.wantX) > epsilon || math.Abs(y-tt.wantY) > epsilon {
				t.Errorf("PolarToScreen: got (%.4f, %.4f), want (%.4f, %.4f)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestDistanceSquared(t *testing.T) {
	if d := DistanceSquared(0, 0, 3, 4); d != 25 {
		t.Errorf("DistanceSquared(0,0,3,4) = %v, want 25", d)
	}
	if d := DistanceSquared(1, 1, 1, 1); d != 0 {
		t.Errorf("DistanceSquared of same point = %v, want 0", d)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"zero", 0, 0},
		{"inside range", 1.5, 1.5},
		{"exactly two pi", TwoPi, 0},
		{"slightly negative", -0.5, TwoPi - 0.5},
		{"several turns", 5*TwoPi + 1, 1},
		{"several negative turns", -3*TwoPi - 1, TwoPi - 1},
		{"NaN", math.NaN(), 0},
		{"+Inf", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapAngle(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("WrapAngle(%v) = %v, want %v", tt.input, got, tt.want)
			}
			if got < 0 || got >= TwoPi {
				t.Errorf("WrapAngle(%v) = %v, out of [0, 2π)", tt.input, got)
			}
		})
	}
}

func TestWrapAngleTinyNegative(t *testing.T) {
	got := WrapAngle(-1e-18)
	if got < 0 || got >= TwoPi {
		t.Errorf("WrapAngle(-1e-18) = %v, out of [0, 2π)", got)
	}
}

package utils

import (
	"math"
	"testing"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.875},
		{"终点", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"四分之一", 0.25, 0.0625},
		{"中点", 0.5, 0.5},
		{"四分之三", 0.75, 0.9375},
		{"终点", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseInOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseInOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, 期望 12.5", got)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		remaining float64
		duration  float64
		expected  float64
	}{
		{"刚开始", 1.0, 1.0, 0},
		{"一半", 0.5, 1.0, 0.5},
		{"结束", 0, 1.0, 1},
		{"剩余超过总时长", 2, 1, 0},
		{"剩余为负", -0.1, 1, 1},
		{"总时长为 0", 0.3, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.remaining, tt.duration); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Progress(%v, %v) = %v, 期望 %v", tt.remaining, tt.duration, got, tt.expected)
			}
		})
	}
}

func TestPingPong(t *testing.T) {
	tests := []struct {
		t        float64
		expected float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 0.5},
		{2, 0},
		{2.25, 0.25},
	}

	for _, tt := range tests {
		if got := PingPong(tt.t, 1); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("PingPong(%v, 1) = %v, 期望 %v", tt.t, got, tt.expected)
		}
	}
	if PingPong(3, 0) != 0 {
		t.Error("zero period should return 0")
	}
}

package systems

import (
	"math"
	"testing"
)

func TestGetWaveParamsWaveNumber(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  float64
		expected int
	}{
		{"开局", 0, 1},
		{"第一波末尾", 9.999, 1},
		{"第二波开始", 10, 2},
		{"第二波中段", 15.5, 2},
		{"第五波", 42.3, 5},
		{"一百秒", 100, 11},
		{"负数按0处理", -5, 1},
		{"NaN按0处理", math.NaN(), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := GetWaveParams(tt.elapsed)
			if params.Wave != tt.expected {
				t.Errorf("GetWaveParams(%v).Wave: expected %d, got %d", tt.elapsed, tt.expected, params.Wave)
			}
		})
	}
}

func TestGetWaveParamsMatchesFloorFormula(t *testing.T) {
	for elapsed := 0.0; elapsed < 600; elapsed += 0.37 {
		want := int(math.Floor(elapsed/10)) + 1
		if got := GetWaveParams(elapsed).Wave; got != want {
			t.Fatalf("elapsed=%.2f: expected wave %d, got %d", elapsed, want, got)
		}
	}
}

func TestGetWaveParamsScalars(t *testing.T) {
	p := GetWaveParams(0)

	const eps = 1e-9
	checks := []struct {
		name      string
		got, want float64
	}{
		{"HazardSpeed", p.HazardSpeed, 0.78},
		{"HazardCountMultiplier", p.HazardCountMultiplier, 1.06},
		{"EnvSpeedMultiplier", p.EnvSpeedMultiplier, 1.04},
		{"BlueChance", p.BlueChance, 0.22},
		{"PurpleChance", p.PurpleChance, 0.135},
		{"GoldChance", p.GoldChance, 0.5},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > eps {
			t.Errorf("wave 1 %s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestGetWaveParamsMonotonicAndCapped(t *testing.T) {
	prev := GetWaveParams(0)
	for elapsed := 0.5; elapsed < 2000; elapsed += 0.5 {
		p := GetWaveParams(elapsed)

		if p.Wave < prev.Wave {
			t.Fatalf("wave decreased at %.1fs: %d -> %d", elapsed, prev.Wave, p.Wave)
		}
		if p.BlueChance < prev.BlueChance {
			t.Fatalf("blueChance decreased at %.1fs", elapsed)
		}
		if p.PurpleChance < prev.PurpleChance {
			t.Fatalf("purpleChance decreased at %.1fs", elapsed)
		}
		if p.BlueChance > BlueChanceCap {
			t.Fatalf("blueChance %v exceeds cap at %.1fs", p.BlueChance, elapsed)
		}
		if p.PurpleChance > PurpleChanceCap {
			t.Fatalf("purpleChance %v exceeds cap at %.1fs", p.PurpleChance, elapsed)
		}
		prev = p
	}

	late := GetWaveParams(1000)
	if late.BlueChance != BlueChanceCap || late.PurpleChance != PurpleChanceCap {
		t.Errorf("late waves should sit at the caps, got blue=%v purple=%v", late.BlueChance, late.PurpleChance)
	}
}

// TestGoldChanceIsConstant 金球权重恒为 0.5，且不参与生成判定（金球是蓝/紫之外的剩余类别）
func TestGoldChanceIsConstant(t *testing.T) {
	for _, elapsed := range []float64{0, 10, 55, 300, 5000} {
		if got := GetWaveParams(elapsed).GoldChance; got != 0.5 {
			t.Errorf("GoldChance at %.0fs: expected 0.5, got %v", elapsed, got)
		}
	}
}

func TestGetWaveParamsIsPure(t *testing.T) {
	a := GetWaveParams(73.2)
	b := GetWaveParams(73.2)
	if a != b {
		t.Errorf("GetWaveParams should be referentially transparent: %+v vs %+v", a, b)
	}
}

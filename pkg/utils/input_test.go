package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/echoorbit/pkg/components"
)

func keySet(keys ...ebiten.Key) KeyReader {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestBuildInputIntent(t *testing.T) {
	tests := []struct {
		name        string
		pressed     []ebiten.Key
		justPressed []ebiten.Key
		expected    components.InputIntent
	}{
		{"无输入", nil, nil, components.InputIntent{}},
		{"左方向键", []ebiten.Key{ebiten.KeyArrowLeft}, nil, components.InputIntent{Left: true}},
		{"A 键", []ebiten.Key{ebiten.KeyA}, nil, components.InputIntent{Left: true}},
		{"右方向键", []ebiten.Key{ebiten.KeyArrowRight}, nil, components.InputIntent{Right: true}},
		{"D 键", []ebiten.Key{ebiten.KeyD}, nil, components.InputIntent{Right: true}},
		{"左右同时", []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowRight}, nil, components.InputIntent{Left: true, Right: true}},
		{"刚按下空格", nil, []ebiten.Key{ebiten.KeySpace}, components.InputIntent{JumpPressed: true}},
		// 按住空格但不是本帧按下，不触发跳跃
		{"按住空格", []ebiten.Key{ebiten.KeySpace}, nil, components.InputIntent{}},
		{"其他按键", []ebiten.Key{ebiten.KeyW, ebiten.KeyEnter}, []ebiten.Key{ebiten.KeyEnter}, components.InputIntent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildInputIntent(keySet(tt.pressed...), keySet(tt.justPressed...))
			if got != tt.expected {
				t.Errorf("got %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestNameInputPrefillAndEdit(t *testing.T) {
	n := NewNameInput("anon", 12)
	if n.Text() != "anon" {
		t.Fatalf("prefill: got %q, want %q", n.Text(), "anon")
	}

	n.Clear()
	n.Append([]rune("bob"))
	n.Backspace()
	n.Append([]rune("x"))

	if n.Text() != "box" {
		t.Errorf("got %q, want %q", n.Text(), "box")
	}
}

func TestNameInputLimits(t *testing.T) {
	n := NewNameInput("", 5)

	n.Append([]rune("ab\ncd\tefgh"))
	if n.Text() != "abcde" {
		t.Errorf("got %q, want %q", n.Text(), "abcde")
	}

	n.Set("星星星星星星")
	if n.Text() != "星星星星星" {
		t.Errorf("rune limit: got %q", n.Text())
	}

	for i := 0; i < 10; i++ {
		n.Backspace()
	}
	if n.Text() != "" {
		t.Errorf("backspace on empty input: got %q", n.Text())
	}
}

func TestKeyRepeats(t *testing.T) {
	tests := []struct {
		duration int
		expected bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{29, false},
		{30, true},
		{31, false},
		{34, true},
		{38, true},
	}

	for _, tt := range tests {
		if got := keyRepeats(tt.duration); got != tt.expected {
			t.Errorf("keyRepeats(%d): got %v, want %v", tt.duration, got, tt.expected)
		}
	}
}

func TestTouchZone(t *testing.T) {
	tests := []struct {
		x        int
		expected int
	}{
		{0, -1},
		{319, -1},
		{320, 0},
		{639, 0},
		{640, 1},
		{959, 1},
	}

	for _, tt := range tests {
		if got := TouchZone(tt.x, 960); got != tt.expected {
			t.Errorf("TouchZone(%d, 960): got %d, want %d", tt.x, got, tt.expected)
		}
	}
}

func TestBuildTouchIntent(t *testing.T) {
	tests := []struct {
		name        string
		held        []int
		justPressed []int
		expected    components.InputIntent
	}{
		{"无触摸", nil, nil, components.InputIntent{}},
		{"按住左侧", []int{100}, nil, components.InputIntent{Left: true}},
		{"按住右侧", []int{900}, nil, components.InputIntent{Right: true}},
		{"点击中间", []int{480}, []int{480}, components.InputIntent{JumpPressed: true}},
		// 按住中间但不是本帧按下，不再跳
		{"按住中间", []int{480}, nil, components.InputIntent{}},
		{"一指转向一指跳跃", []int{50, 500}, []int{500}, components.InputIntent{Left: true, JumpPressed: true}},
		{"刚按下侧边不跳", []int{900}, []int{900}, components.InputIntent{Right: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildTouchIntent(tt.held, tt.justPressed, 960); got != tt.expected {
				t.Errorf("got %+v, want %+v", got, tt.expected)
			}
		})
	}
}

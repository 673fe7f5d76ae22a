// Package utils 提供通用工具函数
package utils

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/echoorbit/pkg/components"
	"github.com/decker502/echoorbit/pkg/config"
)

// 键位绑定
var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys  = []ebiten.Key{ebiten.KeySpace}
)

// KeyReader 按键状态查询函数
type KeyReader func(key ebiten.Key) bool

// ReadInputIntent 读取本帧的输入意图
//
// 键盘：左 ←/A 按住；右 →/D 按住；跳跃 Space 本帧刚按下。
// 触摸：按住屏幕左侧三分之一向左，右侧三分之一向右，点击中间跳跃。
// 跳跃由 inpututil 做边沿检测，每次物理按键只会产生一次 JumpPressed。
func ReadInputIntent() components.InputIntent {
	keys := BuildInputIntent(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	touch := BuildTouchIntent(
		touchXs(ebiten.AppendTouchIDs(nil)),
		touchXs(inpututil.AppendJustPressedTouchIDs(nil)),
		config.GameWindowWidth,
	)

	return components.InputIntent{
		Left:        keys.Left || touch.Left,
		Right:       keys.Right || touch.Right,
		JumpPressed: keys.JumpPressed || touch.JumpPressed,
	}
}

func touchXs(ids []ebiten.TouchID) []int {
	xs := make([]int, 0, len(ids))
	for _, id := range ids {
		x, _ := ebiten.TouchPosition(id)
		xs = append(xs, x)
	}
	return xs
}

// TouchZone 返回触摸点所在的操作区：-1 左，0 中间，+1 右
func TouchZone(x, screenWidth int) int {
	third := screenWidth / 3
	switch {
	case x < third:
		return -1
	case x >= screenWidth-third:
		return 1
	default:
		return 0
	}
}

// BuildTouchIntent 根据触摸点的横坐标构造输入意图
//
// 参数:
//   - held: 所有按住的触摸点横坐标
//   - justPressed: 本帧刚按下的触摸点横坐标
//   - screenWidth: 逻辑屏幕宽度
func BuildTouchIntent(held, justPressed []int, screenWidth int) components.InputIntent {
	var intent components.InputIntent
	for _, x := range held {
		switch TouchZone(x, screenWidth) {
		case -1:
			intent.Left = true
		case 1:
			intent.Right = true
		}
	}
	for _, x := range justPressed {
		if TouchZone(x, screenWidth) == 0 {
			intent.JumpPressed = true
		}
	}
	return intent
}

// BuildInputIntent 根据按键查询函数构造输入意图
//
// 参数:
//   - pressed: 按键是否处于按下状态
//   - justPressed: 按键是否在本帧刚按下
func BuildInputIntent(pressed, justPressed KeyReader) components.InputIntent {
	return components.InputIntent{
		Left:        anyKey(leftKeys, pressed),
		Right:       anyKey(rightKeys, pressed),
		JumpPressed: anyKey(jumpKeys, justPressed),
	}
}

func anyKey(keys []ebiten.Key, check KeyReader) bool {
	for _, k := range keys {
		if check(k) {
			return true
		}
	}
	return false
}

// NameInput 单行名字输入框的编辑状态
//
// 只接受可打印字符，长度按字符（rune）限制。
type NameInput struct {
	text     []rune
	maxRunes int
}

// NewNameInput 创建输入框并预填文本
func NewNameInput(initial string, maxRunes int) *NameInput {
	n := &NameInput{maxRunes: maxRunes}
	n.Set(initial)
	return n
}

// Set 替换全部文本（超出长度部分截断）
func (n *NameInput) Set(text string) {
	n.text = n.text[:0]
	n.Append([]rune(text))
}

// Append 追加字符，忽略控制字符，超出长度的部分丢弃
func (n *NameInput) Append(chars []rune) {
	for _, r := range chars {
		if len(n.text) >= n.maxRunes {
			return
		}
		if !unicode.IsPrint(r) {
			continue
		}
		n.text = append(n.text, r)
	}
}

// Backspace 删除最后一个字符
func (n *NameInput) Backspace() {
	if len(n.text) > 0 {
		n.text = n.text[:len(n.text)-1]
	}
}

// Clear 清空文本
func (n *NameInput) Clear() {
	n.text = n.text[:0]
}

// Text 返回当前文本
func (n *NameInput) Text() string {
	return string(n.text)
}

// Update 从键盘读取本帧的文字输入
//
// 退格键按住时按键盘重复节奏连续删除。
func (n *NameInput) Update() {
	n.Append(ebiten.AppendInputChars(nil))

	if IsKeyRepeating(ebiten.KeyBackspace) {
		n.Backspace()
	}
}

// IsKeyRepeating 按键刚按下或按住超过 30 帧后每 4 帧返回 true
func IsKeyRepeating(key ebiten.Key) bool {
	return keyRepeats(inpututil.KeyPressDuration(key))
}

func keyRepeats(duration int) bool {
	const (
		delay    = 30
		interval = 4
	)
	if duration == 1 {
		return true
	}
	return duration >= delay && (duration-delay)%interval == 0
}

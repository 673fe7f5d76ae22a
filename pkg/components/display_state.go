package components

// DisplayState HUD 上显示的玩家状态
// 由状态效果计时器推导，优先级从高到低依次为声明顺序
type DisplayState int

const (
	DisplaySpawning DisplayState = iota
	DisplayInvincible
	DisplayTimeDrag
	DisplayBulletTime
	DisplayOverclock
	DisplayNormal
)

// String 返回 HUD 显示文本
func (d DisplayState) String() string {
	switch d {
	case DisplaySpawning:
		return "Spawning"
	case DisplayInvincible:
		return "Invincible"
	case DisplayTimeDrag:
		return "Time Drag"
	case DisplayBulletTime:
		return "Bullet Time"
	case DisplayOverclock:
		return "Overclock"
	default:
		return "Normal"
	}
}

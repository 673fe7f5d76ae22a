package components

// PlayerComponent 玩家运动状态
// 每个 tick 仅由 PlayerMotionSystem 修改
type PlayerComponent struct {
	// OrbitIndex 当前所在轨道索引
	OrbitIndex int

	// Angle 当前角度（弧度），始终位于 [0, 2π)
	Angle float64

	// JumpCooldown 跳轨冷却剩余时间（秒），>= 0
	JumpCooldown float64
}

// PlayerPosition 玩家在屏幕上的投影位置
// 由 PlayerMotionSystem.Position 计算得出，只读
type PlayerPosition struct {
	X, Y       float64
	R          float64
	OrbitIndex int
	Angle      float64

	// CenterX, CenterY 轨道圆心，碰撞检测时用于投影其他实体
	CenterX, CenterY float64
}

// InputIntent 单个 tick 的输入意图
//
// JumpPressed 是边沿触发：每次物理按键只能在一个 tick 内为 true，
// 由输入层负责去抖。
type InputIntent struct {
	Left        bool
	Right       bool
	JumpPressed bool
}

// SpeedModifier 状态效果对玩家移动速度的影响
type SpeedModifier struct {
	// Multiplier 速度倍率（1.0 表示无影响）
	Multiplier float64

	// Override 为 true 时表示减速惩罚或加速效果生效，自动漂移被抑制
	Override bool
}

package components

// OrbiterComponent 沿轨道匀角速度运动的实体（障碍物或拾取物）
type OrbiterComponent struct {
	// OrbitIndex 所在轨道索引
	OrbitIndex int

	// Angle 当前角度（弧度），不做归一化
	Angle float64

	// BaseSpeed 带符号的基础角速度（弧度/秒）
	BaseSpeed float64
}

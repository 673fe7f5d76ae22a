package components

// PickupKind 拾取物种类
type PickupKind int

const (
	// PickupGold 金球：进入子弹时间，随后超频加速，并清除减速惩罚
	PickupGold PickupKind = iota
	// PickupBlue 蓝球：叠加减速惩罚
	PickupBlue
	// PickupPurple 紫球：获得护盾，并清除减速惩罚
	PickupPurple
)

// PickupKinds 按碰撞检测顺序排列的全部拾取物种类
var PickupKinds = []PickupKind{PickupGold, PickupBlue, PickupPurple}

// String 返回拾取物种类名称
func (k PickupKind) String() string {
	switch k {
	case PickupGold:
		return "gold"
	case PickupBlue:
		return "blue"
	case PickupPurple:
		return "purple"
	default:
		return "unknown"
	}
}

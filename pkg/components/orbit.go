package components

// OrbitSet 轨道半径集合
//
// 半径严格递增，在一局游戏内固定不变。
// 玩家、障碍物和拾取物都通过轨道索引引用同一份 OrbitSet。
type OrbitSet []float64

// Count 返回轨道数量
func (o OrbitSet) Count() int {
	return len(o)
}

// Radius 返回指定索引的轨道半径
// 调用方保证 index 是合法下标
func (o OrbitSet) Radius(index int) float64 {
	return o[index]
}

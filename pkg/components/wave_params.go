package components

// WaveParams 某一时刻的难度参数
//
// 完全由已存活时间推导，不做存储，需要时重新计算。
// BlueChance/PurpleChance/GoldChance 是权重而非严格的概率划分：
// 生成时先掷蓝球，再掷紫球，其余都是金球，GoldChance 不参与判定。
type WaveParams struct {
	Wave                  int
	HazardSpeed           float64
	HazardCountMultiplier float64
	EnvSpeedMultiplier    float64
	BlueChance            float64
	GoldChance            float64
	PurpleChance          float64
}

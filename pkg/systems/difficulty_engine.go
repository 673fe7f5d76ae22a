package systems

import (
	"math"

	"github.com/decker502/echoorbit/pkg/components"
)

// 难度曲线常量
const (
	// WaveDuration 每一波持续的秒数
	WaveDuration = 10.0

	// GoldChance 金球权重，仅用于展示，生成判定不使用
	GoldChance = 0.5

	BlueChanceCap   = 0.75
	PurpleChanceCap = 0.45
)

// GetWaveParams 根据已存活时间计算难度参数
//
// 纯函数：相同输入永远得到相同输出，没有副作用。
// 公式: wave = max(1, floor(elapsed/10) + 1)，其余参数随 wave 线性增长：
//
//	hazardSpeed           = 0.7 + 0.08·wave
//	hazardCountMultiplier = 1 + 0.06·wave
//	envSpeedMultiplier    = 1 + 0.04·wave
//	blueChance            = min(0.20 + 0.02·wave, 0.75)
//	purpleChance          = min(0.12 + 0.015·wave, 0.45)
//	goldChance            = 0.5
//
// 参数:
//
//	elapsedSeconds - 本局已存活秒数，负数或 NaN 按 0 处理
//
// 返回:
//
//	当前波次的难度参数
func GetWaveParams(elapsedSeconds float64) components.WaveParams {
	if math.IsNaN(elapsedSeconds) || elapsedSeconds < 0 {
		elapsedSeconds = 0
	}

	wave := int(math.Floor(elapsedSeconds/WaveDuration)) + 1
	if wave < 1 {
		wave = 1
	}
	w := float64(wave)

	return components.WaveParams{
		Wave:                  wave,
		HazardSpeed:           0.7 + 0.08*w,
		HazardCountMultiplier: 1 + 0.06*w,
		EnvSpeedMultiplier:    1 + 0.04*w,
		BlueChance:            math.Min(0.20+0.02*w, BlueChanceCap),
		GoldChance:            GoldChance,
		PurpleChance:          math.Min(0.12+0.015*w, PurpleChanceCap),
	}
}

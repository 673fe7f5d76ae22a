package utils

import "math"

// 缓动函数
//
// 接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 用于 HUD 提示文字和护盾光环等纯视觉效果，不参与模拟。

// EaseOutCubic 三次方缓出，开始快、结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Progress 根据剩余时间计算已完成的进度，结果限制在 [0, 1]
//
// 参数：
//   - remaining: 剩余时间
//   - duration: 总时长，<= 0 时视为已完成
func Progress(remaining, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	p := 1 - remaining/duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// PingPong 把单调递增的时间折返成 [0, 1] 之间往复的进度
func PingPong(t, period float64) float64 {
	if period <= 0 {
		return 0
	}
	phase := math.Mod(t, 2*period)
	if phase < 0 {
		phase += 2 * period
	}
	if phase > period {
		phase = 2*period - phase
	}
	return phase / period
}

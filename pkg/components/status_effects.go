package components

// StatusEffectsComponent 状态效果计时器
//
// 五个相互独立的倒计时（秒），均不小于 0。
// 唯一的跨计时器规则：SlowMo 归零的那个 tick 会启动 SpeedBoost。
// 计时逻辑见 systems.StatusEffectSystem。
type StatusEffectsComponent struct {
	Shield      float64 // 紫球护盾
	StartGrace  float64 // 开局无敌
	SlowMo      float64 // 金球子弹时间
	SpeedBoost  float64 // 子弹时间结束后的超频加速
	SlowPenalty float64 // 蓝球减速惩罚
}

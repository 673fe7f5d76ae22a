package systems

import (
	"log"
	"math"

	"github.com/decker502/echoorbit/pkg/components"
	"github.com/decker502/echoorbit/pkg/config"
)

// StatusEffectSystem 管理五个状态效果计时器
//
// 计时器之间相互独立，唯一的联动：SlowMo 在某个 tick 归零时，
// 同一 tick 内 SpeedBoost 被设置为 SpeedBoostDuration。
// 派生属性（无敌、速度倍率、环境时间倍率、HUD 状态）集中在下方的纯函数中，
// 系统方法只是对当前计时器的转发。
type StatusEffectSystem struct {
	effects *components.StatusEffectsComponent
	tuning  config.EffectTuning
}

// NewStatusEffectSystem 创建状态效果系统
//
// 参数:
//   - effects: 由调用方持有的计时器组件
//   - tuning: 效果时长与倍率配置
func NewStatusEffectSystem(effects *components.StatusEffectsComponent, tuning config.EffectTuning) *StatusEffectSystem {
	return &StatusEffectSystem{
		effects: effects,
		tuning:  tuning,
	}
}

// Tick 所有计时器递减 dt 并钳制在 0
// dt 为负数或 NaN 时按 0 处理
func (s *StatusEffectSystem) Tick(dt float64) {
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}

	fx := s.effects
	fx.Shield = decay(fx.Shield, dt)
	fx.StartGrace = decay(fx.StartGrace, dt)
	fx.SpeedBoost = decay(fx.SpeedBoost, dt)
	fx.SlowPenalty = decay(fx.SlowPenalty, dt)

	// 子弹时间结束后立即进入超频阶段，新的加速时间本 tick 不再衰减
	if fx.SlowMo > 0 {
		fx.SlowMo = decay(fx.SlowMo, dt)
		if fx.SlowMo == 0 {
			fx.SpeedBoost = s.tuning.SpeedBoostDuration
		}
	}
}

// OnGold 收集金球：清除减速惩罚，进入子弹时间，清除超频
func (s *StatusEffectSystem) OnGold() {
	s.effects.SlowPenalty = 0
	s.effects.SlowMo = s.tuning.SlowMoDuration
	s.effects.SpeedBoost = 0
}

// OnBlue 收集蓝球：叠加减速惩罚，总量不超过上限
func (s *StatusEffectSystem) OnBlue() {
	s.effects.SlowPenalty = math.Min(s.effects.SlowPenalty+s.tuning.BluePenalty, s.tuning.BluePenaltyCap)
}

// OnPurple 收集紫球：获得护盾并清除减速惩罚
func (s *StatusEffectSystem) OnPurple() {
	s.effects.Shield = s.tuning.ShieldDuration
	s.effects.SlowPenalty = 0
}

// Apply 按拾取物种类调用对应的效果
func (s *StatusEffectSystem) Apply(kind components.PickupKind) {
	switch kind {
	case components.PickupGold:
		s.OnGold()
	case components.PickupBlue:
		s.OnBlue()
	case components.PickupPurple:
		s.OnPurple()
	default:
		log.Printf("[StatusEffectSystem] Ignoring unknown pickup kind %d", kind)
	}
}

// BeginGrace 开局无敌
func (s *StatusEffectSystem) BeginGrace() {
	s.effects.StartGrace = s.tuning.StartGrace
}

// Reset 所有计时器清零
func (s *StatusEffectSystem) Reset() {
	*s.effects = components.StatusEffectsComponent{}
}

// Effects 返回当前计时器的副本
func (s *StatusEffectSystem) Effects() components.StatusEffectsComponent {
	return *s.effects
}

// IsInvincible 当前是否无敌
func (s *StatusEffectSystem) IsInvincible() bool {
	return IsInvincible(*s.effects)
}

// SpeedMultiplier 当前玩家移动速度倍率
func (s *StatusEffectSystem) SpeedMultiplier() float64 {
	return ResolveSpeedModifier(*s.effects, s.tuning).Multiplier
}

// SpeedModifier 当前玩家移动速度修正
func (s *StatusEffectSystem) SpeedModifier() components.SpeedModifier {
	return ResolveSpeedModifier(*s.effects, s.tuning)
}

// EnvTimeScale 当前环境（障碍物、拾取物）时间倍率
func (s *StatusEffectSystem) EnvTimeScale(wave components.WaveParams) float64 {
	return ResolveEnvTimeScale(*s.effects, wave, s.tuning.SlowMoEnvScale)
}

// DisplayState 当前 HUD 状态
func (s *StatusEffectSystem) DisplayState() components.DisplayState {
	return ResolveDisplayState(*s.effects)
}

// IsInvincible 护盾或开局无敌任一生效即无敌
func IsInvincible(fx components.StatusEffectsComponent) bool {
	return fx.Shield > 0 || fx.StartGrace > 0
}

// ResolveSpeedModifier 计算玩家移动速度修正
//
// 优先级：减速惩罚 > 超频加速 > 无修正。
// 任一修正生效时 Override 为 true，自动漂移被抑制。
func ResolveSpeedModifier(fx components.StatusEffectsComponent, tuning config.EffectTuning) components.SpeedModifier {
	switch {
	case fx.SlowPenalty > 0:
		return components.SpeedModifier{Multiplier: tuning.PenaltyFactor, Override: true}
	case fx.SpeedBoost > 0:
		return components.SpeedModifier{Multiplier: tuning.BoostFactor, Override: true}
	default:
		return components.SpeedModifier{Multiplier: 1.0}
	}
}

// ResolveEnvTimeScale 计算环境时间倍率
// 公式: wave.EnvSpeedMultiplier × (slowMoScale 如果子弹时间生效，否则 1)
func ResolveEnvTimeScale(fx components.StatusEffectsComponent, wave components.WaveParams, slowMoScale float64) float64 {
	scale := wave.EnvSpeedMultiplier
	if fx.SlowMo > 0 {
		scale *= slowMoScale
	}
	return scale
}

// ResolveDisplayState 计算 HUD 状态
// 优先级: Spawning > Invincible > Time Drag > Bullet Time > Overclock > Normal
func ResolveDisplayState(fx components.StatusEffectsComponent) components.DisplayState {
	switch {
	case fx.StartGrace > 0:
		return components.DisplaySpawning
	case fx.Shield > 0:
		return components.DisplayInvincible
	case fx.SlowPenalty > 0:
		return components.DisplayTimeDrag
	case fx.SlowMo > 0:
		return components.DisplayBulletTime
	case fx.SpeedBoost > 0:
		return components.DisplayOverclock
	default:
		return components.DisplayNormal
	}
}

func decay(v, dt float64) float64 {
	return math.Max(0, v-dt)
}

package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/echoorbit/pkg/components"
	"github.com/decker502/echoorbit/pkg/config"
	"github.com/decker502/echoorbit/pkg/utils"
)

// FieldSystem 管理轨道上的障碍物和拾取物
//
// 职责：
//   - 开局在每条轨道上放置障碍物（第 i 条轨道 HazardsPerOrbit+i 个），整局不增不减
//   - 按难度定时生成拾取物（金/蓝/紫），被收集时移除，不会自行消失
//   - 推进所有实体的角度，并与玩家做碰撞检测
//
// 碰撞结果以事件列表返回，本系统不持有任何上层逻辑的引用。
type FieldSystem struct {
	orbits components.OrbitSet
	tuning config.FieldTuning
	rng    *rand.Rand

	hazards    []components.OrbiterComponent
	pickups    [3][]components.OrbiterComponent // 按 PickupKind 索引
	spawnTimer float64
}

// NewFieldSystem 创建场地系统并立即布置障碍物
//
// 参数:
//   - orbits: 轨道半径集合
//   - tuning: 场地参数
//   - rng: 随机源，测试时传入固定种子以获得确定结果
func NewFieldSystem(orbits components.OrbitSet, tuning config.FieldTuning, rng *rand.Rand) *FieldSystem {
	s := &FieldSystem{
		orbits: orbits,
		tuning: tuning,
		rng:    rng,
	}
	s.Reset()
	return s
}

// Reset 重新布置障碍物，清空拾取物，重置生成计时器
func (s *FieldSystem) Reset() {
	s.hazards = s.hazards[:0]
	for i := 0; i < s.orbits.Count(); i++ {
		count := s.tuning.HazardsPerOrbit + i
		for j := 0; j < count; j++ {
			s.hazards = append(s.hazards, components.OrbiterComponent{
				OrbitIndex: i,
				Angle:      s.rng.Float64() * utils.TwoPi,
				BaseSpeed:  s.randomSpeed(s.tuning.HazardSpeed),
			})
		}
	}

	for kind := range s.pickups {
		s.pickups[kind] = s.pickups[kind][:0]
	}
	s.spawnTimer = s.tuning.InitialSpawnDelay

	log.Printf("[FieldSystem] Reset: %d hazards on %d orbits", len(s.hazards), s.orbits.Count())
}

// Update 推进一个 tick
//
// 步骤：
//  1. 障碍物角速度 = BaseSpeed × wave.HazardSpeed × envTimeScale，拾取物 = BaseSpeed × envTimeScale
//  2. 生成计时器到期时生成一个拾取物，并按难度重置计时器
//  3. 碰撞检测，顺序固定：障碍物 → 金 → 蓝 → 紫
//     - 非无敌状态下撞到障碍物：立即返回 [Hit]，本 tick 不再检测拾取物
//     - 碰到拾取物：移除并记录 Collected 事件，同一 tick 可收集多个
//
// 参数:
//   - dt: 时间步长（秒）
//   - wave: 当前难度参数
//   - envTimeScale: 环境时间倍率（见 ResolveEnvTimeScale）
//   - pos: 玩家投影位置（含圆心）
//   - invincible: 玩家是否无敌
//
// 返回:
//   - 本 tick 产生的事件，按发生顺序排列；无事件时为 nil
func (s *FieldSystem) Update(dt float64, wave components.WaveParams, envTimeScale float64, pos components.PlayerPosition, invincible bool) []components.FieldEvent {
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}

	hazardRate := wave.HazardSpeed * envTimeScale * dt
	for i := range s.hazards {
		s.hazards[i].Angle += s.hazards[i].BaseSpeed * hazardRate
	}
	pickupRate := envTimeScale * dt
	for kind := range s.pickups {
		for i := range s.pickups[kind] {
			s.pickups[kind][i].Angle += s.pickups[kind][i].BaseSpeed * pickupRate
		}
	}

	s.spawnTimer -= dt
	if s.spawnTimer <= 0 {
		s.spawnPickup(wave)
	}

	if !invincible {
		killRadius2 := s.tuning.HazardKillRadius * s.tuning.HazardKillRadius
		for _, h := range s.hazards {
			if s.distanceSquared(h, pos) < killRadius2 {
				log.Printf("[FieldSystem] Player hit hazard on orbit %d", h.OrbitIndex)
				return []components.FieldEvent{components.HitEvent()}
			}
		}
	}

	var events []components.FieldEvent
	catchRadius2 := s.tuning.PickupCatchRadius * s.tuning.PickupCatchRadius
	for _, kind := range components.PickupKinds {
		// 原地压缩：写指针永远不超过读指针，移除不会跳过或重复处理元素
		kept := s.pickups[kind][:0]
		for _, p := range s.pickups[kind] {
			if s.distanceSquared(p, pos) < catchRadius2 {
				events = append(events, components.CollectedEvent(kind))
				continue
			}
			kept = append(kept, p)
		}
		s.pickups[kind] = kept
	}

	return events
}

// spawnPickup 生成一个拾取物并重置生成计时器
//
// 先按 BlueChance 掷蓝球，不是蓝球再按 PurpleChance 掷紫球，其余为金球。
// GoldChance 不参与判定。
func (s *FieldSystem) spawnPickup(wave components.WaveParams) {
	orbitIndex := s.rng.Intn(s.orbits.Count())
	isBlue := s.rng.Float64() < wave.BlueChance
	isPurple := !isBlue && s.rng.Float64() < wave.PurpleChance

	kind := components.PickupGold
	switch {
	case isBlue:
		kind = components.PickupBlue
	case isPurple:
		kind = components.PickupPurple
	}

	s.pickups[kind] = append(s.pickups[kind], components.OrbiterComponent{
		OrbitIndex: orbitIndex,
		Angle:      s.rng.Float64() * utils.TwoPi,
		BaseSpeed:  s.randomSpeed(s.tuning.PickupSpeed),
	})

	multiplier := wave.HazardCountMultiplier
	if multiplier <= 0 {
		multiplier = 1
	}
	s.spawnTimer = s.tuning.SpawnInterval/multiplier + s.rng.Float64()*s.tuning.SpawnJitter

	log.Printf("[FieldSystem] Spawned %s pickup on orbit %d, next in %.2fs", kind, orbitIndex, s.spawnTimer)
}

// randomSpeed 返回 [Min, Min+Span) 内随机大小、随机方向的角速度
func (s *FieldSystem) randomSpeed(r config.SpeedRange) float64 {
	speed := r.Min + s.rng.Float64()*r.Span
	if s.rng.Float64() < 0.5 {
		speed = -speed
	}
	return speed
}

// distanceSquared 实体在自身轨道上的投影与玩家位置的距离平方
func (s *FieldSystem) distanceSquared(o components.OrbiterComponent, pos components.PlayerPosition) float64 {
	x, y := utils.PolarToScreen(pos.CenterX, pos.CenterY, s.orbits.Radius(o.OrbitIndex), o.Angle)
	return utils.DistanceSquared(x, y, pos.X, pos.Y)
}

// Hazards 返回所有障碍物的副本
func (s *FieldSystem) Hazards() []components.OrbiterComponent {
	out := make([]components.OrbiterComponent, len(s.hazards))
	copy(out, s.hazards)
	return out
}

// Pickups 返回指定种类拾取物的副本
func (s *FieldSystem) Pickups(kind components.PickupKind) []components.OrbiterComponent {
	out := make([]components.OrbiterComponent, len(s.pickups[kind]))
	copy(out, s.pickups[kind])
	return out
}

// PickupCount 返回场上拾取物总数
func (s *FieldSystem) PickupCount() int {
	n := 0
	for kind := range s.pickups {
		n += len(s.pickups[kind])
	}
	return n
}

// SpawnTimer 返回距离下一次生成的剩余时间
func (s *FieldSystem) SpawnTimer() float64 {
	return s.spawnTimer
}

// Orbits 返回轨道半径集合
func (s *FieldSystem) Orbits() components.OrbitSet {
	return s.orbits
}

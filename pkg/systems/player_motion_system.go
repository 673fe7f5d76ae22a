package systems

import (
	"log"
	"math"

	"github.com/decker502/echoorbit/pkg/components"
	"github.com/decker502/echoorbit/pkg/config"
	"github.com/decker502/echoorbit/pkg/utils"
)

// PlayerMotionSystem 玩家沿轨道的角运动与跳轨
//
// 玩家组件由调用方持有，本系统是唯一的写入者。
type PlayerMotionSystem struct {
	player *components.PlayerComponent
	orbits components.OrbitSet
	tuning config.PlayerTuning
}

// NewPlayerMotionSystem 创建玩家运动系统
//
// 参数:
//   - player: 由调用方持有的玩家组件
//   - orbits: 轨道半径集合（至少一条）
//   - tuning: 运动参数
func NewPlayerMotionSystem(player *components.PlayerComponent, orbits components.OrbitSet, tuning config.PlayerTuning) *PlayerMotionSystem {
	return &PlayerMotionSystem{
		player: player,
		orbits: orbits,
		tuning: tuning,
	}
}

// Reset 回到最内圈、角度 0、无冷却
func (s *PlayerMotionSystem) Reset() {
	*s.player = components.PlayerComponent{}
}

// Update 推进一个 tick
//
// 步骤：
//  1. 跳轨冷却递减（不低于 0）
//  2. 方向 = 左(-1) + 右(+1)；无方向输入且无速度修正时叠加自动漂移
//  3. angle += 方向 × 基础速度 × 倍率 × dt，并归一化到 [0, 2π)
//  4. 按下跳跃且冷却为 0 时跳到下一条轨道（最外圈回到最内圈）
//
// 参数:
//   - dt: 时间步长（秒），负数按 0 处理
//   - input: 本 tick 的输入意图，JumpPressed 必须是边沿触发
//   - mod: 状态效果给出的速度修正
func (s *PlayerMotionSystem) Update(dt float64, input components.InputIntent, mod components.SpeedModifier) {
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	p := s.player

	p.JumpCooldown = math.Max(0, p.JumpCooldown-dt)

	direction := 0.0
	if input.Left {
		direction -= 1
	}
	if input.Right {
		direction += 1
	}

	steering := input.Left || input.Right
	if !mod.Override && (!steering || s.tuning.DriftWhileSteering) {
		direction += s.tuning.AutoDrift
	}

	p.Angle = utils.WrapAngle(p.Angle + direction*s.tuning.BaseSpeed*mod.Multiplier*dt)

	if input.JumpPressed && p.JumpCooldown <= 0 {
		from := p.OrbitIndex
		p.OrbitIndex = (p.OrbitIndex + 1) % s.orbits.Count()
		p.JumpCooldown = s.tuning.JumpCooldown
		log.Printf("[PlayerMotionSystem] Jump orbit %d -> %d", from, p.OrbitIndex)
	}
}

// Position 返回玩家的屏幕投影位置
// 只读，不修改任何状态
func (s *PlayerMotionSystem) Position(centerX, centerY float64) components.PlayerPosition {
	p := s.player
	r := s.orbits.Radius(p.OrbitIndex)
	x, y := utils.PolarToScreen(centerX, centerY, r, p.Angle)
	return components.PlayerPosition{
		X:          x,
		Y:          y,
		R:          r,
		OrbitIndex: p.OrbitIndex,
		Angle:      p.Angle,
		CenterX:    centerX,
		CenterY:    centerY,
	}
}

// Player 返回玩家组件副本
func (s *PlayerMotionSystem) Player() components.PlayerComponent {
	return *s.player
}

package main

import (
	"math"

	"github.com/decker502/echoorbit/pkg/components"
	"github.com/decker502/echoorbit/pkg/game"
	"github.com/decker502/echoorbit/pkg/utils"
)

// 自动驾驶参数（弧度）
const (
	dangerWindow   = 0.35 // 当前轨道上障碍物进入该角距离时需要躲避
	landingWindow  = 0.45 // 跳轨目标轨道上该角距离内不能有障碍物
	pickupInterest = 1.2  // 只追逐该角距离内的拾取物
)

// Autopilot 简单的规则式输入策略，用于无界面批量模拟
//
// 优先级：躲避当前轨道上靠近的障碍物（能跳就跳，否则反向移动）>
// 追逐附近的金球和紫球 > 不操作（自动漂移）。
// 蓝球会让玩家减速，从不主动追逐。
type Autopilot struct{}

// Decide 根据控制器当前状态给出本 tick 的输入
func (Autopilot) Decide(rc *game.RunController) components.InputIntent {
	field := rc.Field()
	wanted := append(field.Pickups(components.PickupGold), field.Pickups(components.PickupPurple)...)
	return decide(rc.Player(), rc.Orbits(), field.Hazards(), wanted)
}

// decide 纯函数版本的决策逻辑
func decide(player components.PlayerComponent, orbits components.OrbitSet, hazards, wanted []components.OrbiterComponent) components.InputIntent {
	nextOrbit := (player.OrbitIndex + 1) % orbits.Count()

	threat, threatDiff := nearestOnOrbit(hazards, player.OrbitIndex, player.Angle, dangerWindow)
	if threat {
		if player.JumpCooldown <= 0 && nextOrbit != player.OrbitIndex {
			if blocked, _ := nearestOnOrbit(hazards, nextOrbit, player.Angle, landingWindow); !blocked {
				return components.InputIntent{JumpPressed: true}
			}
		}
		// 障碍物在前方（角度更大）就往回走，反之向前
		if threatDiff > 0 {
			return components.InputIntent{Left: true}
		}
		return components.InputIntent{Right: true}
	}

	if found, diff := nearestOnOrbit(wanted, player.OrbitIndex, player.Angle, pickupInterest); found {
		if diff > 0 {
			return components.InputIntent{Right: true}
		}
		return components.InputIntent{Left: true}
	}

	return components.InputIntent{}
}

// nearestOnOrbit 查找指定轨道上角距离 window 以内最近的实体
//
// 返回:
//   - bool: 是否找到
//   - float64: 实体相对玩家的有符号角距离，范围 (-π, π]
func nearestOnOrbit(orbiters []components.OrbiterComponent, orbit int, angle, window float64) (bool, float64) {
	found := false
	best := 0.0
	for _, o := range orbiters {
		if o.OrbitIndex != orbit {
			continue
		}
		d := angleDiff(o.Angle, angle)
		if math.Abs(d) > window {
			continue
		}
		if !found || math.Abs(d) < math.Abs(best) {
			found = true
			best = d
		}
	}
	return found, best
}

// angleDiff 返回 a - b 归一化到 (-π, π]
func angleDiff(a, b float64) float64 {
	d := utils.WrapAngle(a - b)
	if d > math.Pi {
		d -= utils.TwoPi
	}
	return d
}

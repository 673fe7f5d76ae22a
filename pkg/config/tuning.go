package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning 表示调参配置未通过校验
// 调用者可使用 errors.Is 检查
var ErrInvalidTuning = errors.New("invalid tuning config")

// TuningConfig 游戏调参配置
//
// 包含轨道、玩家运动、状态效果和场地生成的所有可调常量。
// 默认值与线上版本保持一致，YAML 文件只需覆盖需要修改的字段。
//
// 配置文件位置: data/tuning.yaml
type TuningConfig struct {
	Arena   ArenaTuning  `yaml:"arena"`
	Player  PlayerTuning `yaml:"player"`
	Effects EffectTuning `yaml:"effects"`
	Field   FieldTuning  `yaml:"field"`
}

// ArenaTuning 场地几何配置
type ArenaTuning struct {
	// Orbits 轨道半径列表（像素），必须严格递增
	Orbits []float64 `yaml:"orbits"`
}

// PlayerTuning 玩家运动配置
type PlayerTuning struct {
	BaseSpeed    float64 `yaml:"baseSpeed"`    // 基础角速度（弧度/秒）
	AutoDrift    float64 `yaml:"autoDrift"`    // 无输入时的自动漂移方向分量
	JumpCooldown float64 `yaml:"jumpCooldown"` // 跳轨冷却（秒）

	// DriftWhileSteering 为 true 时，按住方向键也叠加自动漂移
	DriftWhileSteering bool `yaml:"driftWhileSteering"`
}

// EffectTuning 状态效果配置
type EffectTuning struct {
	SlowMoDuration     float64 `yaml:"slowMoDuration"`     // 金球子弹时间（秒）
	SpeedBoostDuration float64 `yaml:"speedBoostDuration"` // 子弹时间结束后的加速（秒）
	BluePenalty        float64 `yaml:"bluePenalty"`        // 每个蓝球增加的减速时间（秒）
	BluePenaltyCap     float64 `yaml:"bluePenaltyCap"`     // 减速时间上限（秒）
	ShieldDuration     float64 `yaml:"shieldDuration"`     // 紫球护盾（秒）
	StartGrace         float64 `yaml:"startGrace"`         // 开局无敌（秒）
	SlowMoEnvScale     float64 `yaml:"slowMoEnvScale"`     // 子弹时间下的环境速度倍率
	PenaltyFactor      float64 `yaml:"penaltyFactor"`      // 减速惩罚下的移动倍率
	BoostFactor        float64 `yaml:"boostFactor"`        // 加速效果下的移动倍率
}

// FieldTuning 障碍物与拾取物配置
type FieldTuning struct {
	HazardKillRadius  float64 `yaml:"hazardKillRadius"`  // 障碍物判定半径（像素）
	PickupCatchRadius float64 `yaml:"pickupCatchRadius"` // 拾取判定半径（像素）

	// HazardsPerOrbit 最内圈障碍物数量，外圈每层 +1
	HazardsPerOrbit int `yaml:"hazardsPerOrbit"`

	HazardSpeed SpeedRange `yaml:"hazardSpeed"`
	PickupSpeed SpeedRange `yaml:"pickupSpeed"`

	InitialSpawnDelay float64 `yaml:"initialSpawnDelay"` // 开局首个拾取物的延迟（秒）
	SpawnInterval     float64 `yaml:"spawnInterval"`     // 基础生成间隔，除以 HazardCountMultiplier
	SpawnJitter       float64 `yaml:"spawnJitter"`       // 生成间隔随机抖动上限（秒）
}

// SpeedRange 角速度大小范围，实际值为 [Min, Min+Span) 并随机取符号
type SpeedRange struct {
	Min  float64 `yaml:"min"`
	Span float64 `yaml:"span"`
}

// DefaultTuning 返回默认调参配置
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		Arena: ArenaTuning{
			Orbits: []float64{90, 150, 210, 270, 330},
		},
		Player: PlayerTuning{
			BaseSpeed:    2.4,
			AutoDrift:    0.35,
			JumpCooldown: 0.25,
		},
		Effects: EffectTuning{
			SlowMoDuration:     1.4,
			SpeedBoostDuration: 1.5,
			BluePenalty:        2.2,
			BluePenaltyCap:     6.0,
			ShieldDuration:     5.0,
			StartGrace:         1.5,
			SlowMoEnvScale:     0.33,
			PenaltyFactor:      0.5,
			BoostFactor:        2.3,
		},
		Field: FieldTuning{
			HazardKillRadius:  22,
			PickupCatchRadius: 18,
			HazardsPerOrbit:   2,
			HazardSpeed:       SpeedRange{Min: 0.6, Span: 0.8},
			PickupSpeed:       SpeedRange{Min: 0.4, Span: 0.7},
			InitialSpawnDelay: 1.5,
			SpawnInterval:     1.6,
			SpawnJitter:       0.6,
		},
	}
}

// ParseTuning 解析 YAML 调参数据
//
// 数据覆盖在默认配置之上，未出现的字段保留默认值。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *TuningConfig: 解析并校验后的配置
//   - error: 解析或校验失败时返回错误
func ParseTuning(data []byte) (*TuningConfig, error) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadTuningConfig 从文件加载调参配置
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *TuningConfig: 加载成功后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadTuningConfig(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}

	return ParseTuning(data)
}

// Validate 验证配置有效性
//
// 检查：
//   - 至少一条轨道，半径为正且严格递增
//   - 速度、时长、判定半径不为负
//   - 生成间隔为正（否则每个 tick 都会生成）
func (c *TuningConfig) Validate() error {
	if len(c.Arena.Orbits) == 0 {
		return fmt.Errorf("%w: at least one orbit is required", ErrInvalidTuning)
	}
	for i, r := range c.Arena.Orbits {
		if r <= 0 {
			return fmt.Errorf("%w: orbit %d radius must be positive, got %.1f", ErrInvalidTuning, i, r)
		}
		if i > 0 && r <= c.Arena.Orbits[i-1] {
			return fmt.Errorf("%w: orbit radii must be strictly increasing (orbit %d: %.1f <= %.1f)",
				ErrInvalidTuning, i, r, c.Arena.Orbits[i-1])
		}
	}

	nonNegative := map[string]float64{
		"player.baseSpeed":           c.Player.BaseSpeed,
		"player.autoDrift":           c.Player.AutoDrift,
		"player.jumpCooldown":        c.Player.JumpCooldown,
		"effects.slowMoDuration":     c.Effects.SlowMoDuration,
		"effects.speedBoostDuration": c.Effects.SpeedBoostDuration,
		"effects.bluePenalty":        c.Effects.BluePenalty,
		"effects.bluePenaltyCap":     c.Effects.BluePenaltyCap,
		"effects.shieldDuration":     c.Effects.ShieldDuration,
		"effects.startGrace":         c.Effects.StartGrace,
		"effects.slowMoEnvScale":     c.Effects.SlowMoEnvScale,
		"effects.penaltyFactor":      c.Effects.PenaltyFactor,
		"effects.boostFactor":        c.Effects.BoostFactor,
		"field.hazardKillRadius":     c.Field.HazardKillRadius,
		"field.pickupCatchRadius":    c.Field.PickupCatchRadius,
		"field.hazardSpeed.min":      c.Field.HazardSpeed.Min,
		"field.hazardSpeed.span":     c.Field.HazardSpeed.Span,
		"field.pickupSpeed.min":      c.Field.PickupSpeed.Min,
		"field.pickupSpeed.span":     c.Field.PickupSpeed.Span,
		"field.initialSpawnDelay":    c.Field.InitialSpawnDelay,
		"field.spawnJitter":          c.Field.SpawnJitter,
	}
	for name, v := range nonNegative {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidTuning, name, v)
		}
	}

	if c.Field.SpawnInterval <= 0 {
		return fmt.Errorf("%w: field.spawnInterval must be positive, got %v", ErrInvalidTuning, c.Field.SpawnInterval)
	}
	if c.Field.HazardsPerOrbit < 0 {
		return fmt.Errorf("%w: field.hazardsPerOrbit must not be negative, got %d", ErrInvalidTuning, c.Field.HazardsPerOrbit)
	}

	return nil
}

// OuterRadius 返回最外圈轨道半径
func (c *TuningConfig) OuterRadius() float64 {
	return c.Arena.Orbits[len(c.Arena.Orbits)-1]
}

package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/echoorbit/pkg/components"
	"github.com/decker502/echoorbit/pkg/config"
	"github.com/decker502/echoorbit/pkg/systems"
	"github.com/google/uuid"
)

// RunPhase 一局游戏所处的阶段
type RunPhase int

const (
	// RunPhaseIdle 尚未开始
	RunPhaseIdle RunPhase = iota
	// RunPhasePlaying 进行中，Update 推进模拟
	RunPhasePlaying
	// RunPhaseGameOver 已结束，等待提交或丢弃成绩
	RunPhaseGameOver
)

// String 返回阶段名称（用于日志）
func (p RunPhase) String() string {
	switch p {
	case RunPhaseIdle:
		return "Idle"
	case RunPhasePlaying:
		return "Playing"
	case RunPhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("RunPhase(%d)", int(p))
	}
}

// RunResult 一局结束时的成绩快照
type RunResult struct {
	RunID uuid.UUID
	Wave  int
	Time  float64
}

// RunController 一局游戏的模拟上下文
//
// 持有轨道、玩家、状态效果、场地、已存活时间和随机源。
// 由调用方创建和持有，不存在包级全局状态；多个实例可以同时存在，
// 但单个实例只能在一个 goroutine 中使用。
//
// 每个 tick 的顺序：
//
//	状态效果计时 → 计算波次参数 → 玩家移动 → 场地推进与碰撞 → 处理事件
type RunController struct {
	tuning           *config.TuningConfig
	orbits           components.OrbitSet
	centerX, centerY float64
	rng              *rand.Rand

	player  components.PlayerComponent
	effects components.StatusEffectsComponent

	motion *systems.PlayerMotionSystem
	status *systems.StatusEffectSystem
	field  *systems.FieldSystem

	phase   RunPhase
	elapsed float64
	runID   uuid.UUID
	pending *RunResult
}

// NewRunController 创建模拟上下文
//
// 参数:
//   - tuning: 调参配置，nil 时使用默认配置
//   - centerX, centerY: 轨道圆心（屏幕坐标）
//   - rng: 随机源，nil 时使用当前时间作为种子
//
// 返回:
//   - *RunController: 处于 Idle 阶段的控制器，调用 StartRun 开始一局
func NewRunController(tuning *config.TuningConfig, centerX, centerY float64, rng *rand.Rand) *RunController {
	if tuning == nil {
		tuning = config.DefaultTuning()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	orbits := components.OrbitSet(append([]float64(nil), tuning.Arena.Orbits...))

	rc := &RunController{
		tuning:  tuning,
		orbits:  orbits,
		centerX: centerX,
		centerY: centerY,
		rng:     rng,
		phase:   RunPhaseIdle,
	}
	rc.motion = systems.NewPlayerMotionSystem(&rc.player, orbits, tuning.Player)
	rc.status = systems.NewStatusEffectSystem(&rc.effects, tuning.Effects)
	rc.field = systems.NewFieldSystem(orbits, tuning.Field, rng)

	return rc
}

// StartRun 重置所有状态并开始新的一局
//
// 玩家回到最内圈角度 0，计时器清零后授予开局无敌，
// 障碍物重新布置，拾取物清空。未提交的成绩会被丢弃。
func (rc *RunController) StartRun() {
	if rc.pending != nil {
		log.Printf("[RunController] Discarding unsubmitted result of run %s", rc.pending.RunID)
		rc.pending = nil
	}

	rc.motion.Reset()
	rc.status.Reset()
	rc.status.BeginGrace()
	rc.field.Reset()

	rc.elapsed = 0
	rc.runID = uuid.New()
	rc.phase = RunPhasePlaying

	log.Printf("[RunController] Run %s started (%d orbits, %d hazards)",
		rc.runID, rc.orbits.Count(), len(rc.field.Hazards()))
}

// Update 推进一个 tick
//
// 仅在 Playing 阶段生效。撞上障碍物时本局结束（EndRun），
// 收集拾取物时立即应用对应的状态效果。
//
// 参数:
//   - dt: 时间步长（秒），负数或 NaN 按 0 处理
//   - input: 本 tick 的输入意图
//
// 返回:
//   - []components.FieldEvent: 本 tick 发生的事件，按发生顺序排列
func (rc *RunController) Update(dt float64, input components.InputIntent) []components.FieldEvent {
	if rc.phase != RunPhasePlaying {
		return nil
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	rc.elapsed += dt
	rc.status.Tick(dt)

	wave := systems.GetWaveParams(rc.elapsed)
	envScale := rc.status.EnvTimeScale(wave)

	rc.motion.Update(dt, input, rc.status.SpeedModifier())
	pos := rc.motion.Position(rc.centerX, rc.centerY)

	events := rc.field.Update(dt, wave, envScale, pos, rc.status.IsInvincible())
	for _, ev := range events {
		switch ev.Kind {
		case components.EventHit:
			rc.EndRun()
		case components.EventCollected:
			rc.status.Apply(ev.Pickup)
		}
	}

	return events
}

// EndRun 结束当前一局并记录成绩
//
// 幂等：只有 Playing 阶段的第一次调用会生效。
func (rc *RunController) EndRun() {
	if rc.phase != RunPhasePlaying {
		return
	}

	rc.phase = RunPhaseGameOver
	rc.pending = &RunResult{
		RunID: rc.runID,
		Wave:  rc.Wave().Wave,
		Time:  rc.elapsed,
	}

	log.Printf("[RunController] Run %s ended: wave %d, %.1fs", rc.runID, rc.pending.Wave, rc.elapsed)
}

// PendingScore 返回已结束但尚未提交的成绩
func (rc *RunController) PendingScore() (RunResult, bool) {
	if rc.pending == nil {
		return RunResult{}, false
	}
	return *rc.pending, true
}

// SubmitScore 把待提交的成绩写入排行榜
//
// 每局成绩最多提交一次；提交后 PendingScore 返回 false。
//
// 参数:
//   - name: 玩家名（规则见 NormalizeName）
//   - lb: 排行榜，nil 时成绩被丢弃
//
// 返回:
//   - int: 名次（从 1 开始），没有待提交成绩或未上榜时返回 0
func (rc *RunController) SubmitScore(name string, lb *Leaderboard) int {
	if rc.pending == nil {
		return 0
	}

	result := *rc.pending
	rc.pending = nil

	if lb == nil {
		log.Printf("[RunController] No leaderboard, result of run %s dropped", result.RunID)
		return 0
	}
	return lb.AddScore(name, result.Wave, result.Time)
}

// Discard 丢弃待提交的成绩
func (rc *RunController) Discard() {
	rc.pending = nil
}

// Phase 返回当前阶段
func (rc *RunController) Phase() RunPhase {
	return rc.phase
}

// RunID 返回当前（或最近一局）的标识，尚未开始时为 uuid.Nil
func (rc *RunController) RunID() uuid.UUID {
	return rc.runID
}

// Elapsed 返回本局已存活时间（秒）
func (rc *RunController) Elapsed() float64 {
	return rc.elapsed
}

// Wave 返回当前波次参数
func (rc *RunController) Wave() components.WaveParams {
	return systems.GetWaveParams(rc.elapsed)
}

// DisplayState 返回用于 HUD 的状态名
func (rc *RunController) DisplayState() components.DisplayState {
	return rc.status.DisplayState()
}

// Effects 返回状态效果计时器的副本
func (rc *RunController) Effects() components.StatusEffectsComponent {
	return rc.status.Effects()
}

// Player 返回玩家状态的副本
func (rc *RunController) Player() components.PlayerComponent {
	return rc.motion.Player()
}

// Position 返回玩家的屏幕位置
func (rc *RunController) Position() components.PlayerPosition {
	return rc.motion.Position(rc.centerX, rc.centerY)
}

// Field 返回场地系统（渲染层只读使用）
func (rc *RunController) Field() *systems.FieldSystem {
	return rc.field
}

// Orbits 返回轨道集合
func (rc *RunController) Orbits() components.OrbitSet {
	return rc.orbits
}

// Center 返回轨道圆心
func (rc *RunController) Center() (float64, float64) {
	return rc.centerX, rc.centerY
}

// Tuning 返回使用中的调参配置
func (rc *RunController) Tuning() *config.TuningConfig {
	return rc.tuning
}

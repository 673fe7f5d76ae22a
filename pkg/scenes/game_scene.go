package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/echoorbit/pkg/components"
	"github.com/decker502/echoorbit/pkg/config"
	"github.com/decker502/echoorbit/pkg/game"
	"github.com/decker502/echoorbit/pkg/utils"
)

const (
	// pickupToastDuration 拾取提示显示时长（秒）
	pickupToastDuration = 1.0
	// shieldPulsePeriod 护盾光环由小到大的时长（秒）
	shieldPulsePeriod = 0.4
)

// GameScene 游戏进行中的场景
//
// 每帧读取键盘输入，推进 RunController，并根据其状态绘制轨道、
// 障碍物、拾取物、玩家、HUD 和排行榜面板。
// 撞上障碍物后切换到 GameOverScene。
type GameScene struct {
	state        *game.GameState
	sceneManager *game.SceneManager
	run          *game.RunController

	paused bool
	clock  float64 // 场景运行时间，用于视觉效果

	toast      string
	toastTimer float64
}

// NewGameScene 创建游戏场景并立即开始一局
func NewGameScene(state *game.GameState, sceneManager *game.SceneManager) *GameScene {
	s := &GameScene{
		state:        state,
		sceneManager: sceneManager,
		run:          state.NewRunController(nil),
	}
	s.run.StartRun()
	return s
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.paused = !s.paused
		log.Printf("[GameScene] Paused: %v", s.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		settings := s.state.GetSettingsManager()
		settings.SetShowLeaderboard(!settings.GetSettings().ShowLeaderboard)
		if err := settings.Save(); err != nil {
			log.Printf("[GameScene] Warning: %v", err)
		}
	}
	if s.paused {
		return
	}
	s.clock += deltaTime

	events := s.run.Update(deltaTime, utils.ReadInputIntent())
	for _, ev := range events {
		if ev.Kind == components.EventCollected {
			s.toast = pickupToast(ev.Pickup)
			s.toastTimer = pickupToastDuration
		}
	}
	if s.toastTimer > 0 {
		s.toastTimer -= deltaTime
	}

	if s.run.Phase() == game.RunPhaseGameOver {
		s.sceneManager.SwitchTo(NewGameOverScene(s.state, s.sceneManager, s.run))
	}
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	drawArena(screen, s.run, s.clock)

	drawPanel(screen, config.HUDPanelX, config.HUDPanelY, config.HUDPanelWidth, config.HUDPanelHeight)
	for i, line := range formatHUDLines(s.run.Wave().Wave, s.run.Elapsed(), s.run.DisplayState()) {
		ebitenutil.DebugPrintAt(screen, line, config.HUDPanelX+10, config.HUDPanelY+8+i*18)
	}
	ebitenutil.DebugPrintAt(screen, "P pause  L board  F11 fullscreen", config.HUDPanelX+10, config.HUDPanelY+68)

	if s.state.GetSettingsManager().GetSettings().ShowLeaderboard {
		drawLeaderboardPanel(screen, s.state.GetLeaderboard().Entries(), 0)
	}

	cx, cy := config.GetArenaCenter()
	if s.toastTimer > 0 {
		// 提示文字向上飘出
		rise := utils.Lerp(0, 28, utils.EaseOutCubic(utils.Progress(s.toastTimer, pickupToastDuration)))
		drawCenteredText(screen, s.toast, int(cx), int(cy)-8-int(rise))
	}
	if s.paused {
		drawCenteredText(screen, "PAUSED", int(cx), int(cy)+12)
	}
}

// drawArena 绘制轨道、障碍物、拾取物和玩家
//
// clock 为场景时间（秒），驱动护盾光环的脉动。
func drawArena(screen *ebiten.Image, run *game.RunController, clock float64) {
	cx, cy := run.Center()
	orbits := run.Orbits()

	for i := 0; i < orbits.Count(); i++ {
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(orbits.Radius(i)), 1, colorOrbit, true)
	}

	field := run.Field()
	for _, h := range field.Hazards() {
		x, y := utils.PolarToScreen(cx, cy, orbits.Radius(h.OrbitIndex), h.Angle)
		vector.DrawFilledCircle(screen, float32(x), float32(y), hazardDrawRadius, colorHazard, true)
	}
	for _, kind := range components.PickupKinds {
		for _, p := range field.Pickups(kind) {
			x, y := utils.PolarToScreen(cx, cy, orbits.Radius(p.OrbitIndex), p.Angle)
			vector.DrawFilledCircle(screen, float32(x), float32(y), pickupDrawRadius, pickupColor(kind), true)
		}
	}

	pos := run.Position()
	state := run.DisplayState()
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), playerDrawRadius, playerColor(state), true)
	if run.Effects().Shield > 0 {
		pulse := utils.EaseInOutCubic(utils.PingPong(clock, shieldPulsePeriod))
		ring := utils.Lerp(playerDrawRadius+3, playerDrawRadius+7, pulse)
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(ring), 2, colorPurple, true)
	}
}

// pickupToast 返回收集拾取物时的提示文字
func pickupToast(kind components.PickupKind) string {
	switch kind {
	case components.PickupGold:
		return "+ BULLET TIME"
	case components.PickupBlue:
		return "- TIME DRAG"
	case components.PickupPurple:
		return "+ SHIELD"
	default:
		return ""
	}
}

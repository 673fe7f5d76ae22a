package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/echoorbit/pkg/components"
	"github.com/decker502/echoorbit/pkg/config"
	"github.com/decker502/echoorbit/pkg/game"
	"github.com/decker502/echoorbit/pkg/utils"
)

var pickupInstructions = []string{
	"Gold   bullet time, then overclock",
	"Blue   time drag (slows you down)",
	"Purple shield, clears time drag",
}

// startInstructions 返回开始界面的说明文字，触摸设备显示触摸操作
func startInstructions(mobile bool) []string {
	lines := []string{"ECHO ORBIT: ENDLESS DASH", ""}
	if mobile {
		lines = append(lines,
			"Hold left / right edge  steer",
			"Tap the middle          jump to the next orbit")
	} else {
		lines = append(lines,
			"Left / Right (A / D)   steer",
			"Space                  jump to the next orbit")
	}
	lines = append(lines, "")
	lines = append(lines, pickupInstructions...)
	lines = append(lines, "")
	if mobile {
		lines = append(lines, "Tap anywhere to start")
	} else {
		lines = append(lines, "Press Space or Enter to start")
	}
	return lines
}

// StartScene 开始界面：操作说明和排行榜
type StartScene struct {
	state        *game.GameState
	sceneManager *game.SceneManager

	// 背景轨道缓慢旋转的角度
	spin float64
}

// NewStartScene 创建开始界面
func NewStartScene(state *game.GameState, sceneManager *game.SceneManager) *StartScene {
	return &StartScene{
		state:        state,
		sceneManager: sceneManager,
	}
}

// Update 等待开始按键
func (s *StartScene) Update(deltaTime float64) {
	s.spin += deltaTime * 0.4

	tapped := len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	if tapped || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sceneManager.Goto(game.SceneGame)
	}
}

// Draw 绘制开始界面
func (s *StartScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	cx, cy := config.GetArenaCenter()
	for _, r := range s.state.GetTuning().Arena.Orbits {
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 1, colorOrbit, true)
	}

	// 每条轨道上放一个示意拾取物
	for i, r := range s.state.GetTuning().Arena.Orbits {
		kind := i % 3
		x, y := utils.PolarToScreen(cx, cy, r, s.spin*float64(i+1))
		vector.DrawFilledCircle(screen, float32(x), float32(y), pickupDrawRadius, pickupColor(components.PickupKinds[kind]), true)
	}

	drawPanel(screen, float32(cx)-170, float32(cy)-100, 340, 200)
	for i, line := range startInstructions(utils.IsMobile()) {
		drawCenteredText(screen, line, int(cx), int(cy)-90+i*18)
	}

	drawLeaderboardPanel(screen, s.state.GetLeaderboard().Entries(), 0)
}

package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/echoorbit/pkg/config"
	"github.com/decker502/echoorbit/pkg/game"
	"github.com/decker502/echoorbit/pkg/utils"
)

// GameOverScene 结算界面
//
// 显示本局成绩和排行榜，并提供名字输入框（预填上次使用的名字）：
//   - Enter：保存成绩，再按一次 Enter 或 Space 开始新的一局
//   - Esc：不保存，直接开始新的一局
//
// 触摸设备上点击屏幕等同于 Enter。
type GameOverScene struct {
	state        *game.GameState
	sceneManager *game.SceneManager
	run          *game.RunController

	result    game.RunResult
	nameInput *utils.NameInput
	submitted bool
	rank      int
}

// NewGameOverScene 创建结算界面
func NewGameOverScene(state *game.GameState, sceneManager *game.SceneManager, run *game.RunController) *GameOverScene {
	result, _ := run.PendingScore()
	name := state.GetSettingsManager().GetSettings().PlayerName

	return &GameOverScene{
		state:        state,
		sceneManager: sceneManager,
		run:          run,
		result:       result,
		nameInput:    utils.NewNameInput(name, game.MaxNameLength),
	}
}

// Update 处理名字输入和按键
func (s *GameOverScene) Update(deltaTime float64) {
	// 触摸设备没有键盘，点击即以预填的名字保存
	tapped := len(inpututil.AppendJustPressedTouchIDs(nil)) > 0

	if s.submitted {
		if tapped || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			s.sceneManager.Goto(game.SceneGame)
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.run.Discard()
		log.Printf("[GameOverScene] Score discarded")
		s.sceneManager.Goto(game.SceneGame)
		return
	}

	if tapped || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.submit()
		return
	}

	s.nameInput.Update()
}

// submit 保存成绩并记住名字
func (s *GameOverScene) submit() {
	name := s.nameInput.Text()
	s.rank = s.run.SubmitScore(name, s.state.GetLeaderboard())
	s.submitted = true

	settings := s.state.GetSettingsManager()
	settings.SetPlayerName(name)
	if err := settings.Save(); err != nil {
		log.Printf("[GameOverScene] Warning: %v", err)
	}
}

// SaveOnExit 窗口关闭时保存尚未提交的成绩
func (s *GameOverScene) SaveOnExit() bool {
	if s.submitted {
		return true
	}
	if _, ok := s.run.PendingScore(); !ok {
		return true
	}
	s.submit()
	return true
}

// Draw 绘制结算界面
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	drawArena(screen, s.run, 0)

	cx, cy := config.GetArenaCenter()
	drawPanel(screen, float32(cx)-160, float32(cy)-80, 320, 160)

	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Wave %d   Time %.1fs", s.result.Wave, s.result.Time),
		"",
	}
	if s.submitted {
		lines = append(lines, rankMessage(s.rank), "", "Enter / Space: play again")
	} else {
		lines = append(lines, fmt.Sprintf("Name: %s_", s.nameInput.Text()), "", "Enter: save   Esc: play again")
	}
	for i, line := range lines {
		drawCenteredText(screen, line, int(cx), int(cy)-70+i*18)
	}

	drawLeaderboardPanel(screen, s.state.GetLeaderboard().Entries(), s.rank)
}

// rankMessage 返回保存成绩后的提示文字
func rankMessage(rank int) string {
	if rank <= 0 {
		return "Saved, but not in the top 10"
	}
	return fmt.Sprintf("Saved! Rank #%d", rank)
}

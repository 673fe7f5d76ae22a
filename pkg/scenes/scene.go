package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/echoorbit/pkg/components"
	"github.com/decker502/echoorbit/pkg/config"
	"github.com/decker502/echoorbit/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 调色板
var (
	colorBackground = color.RGBA{R: 8, G: 10, B: 24, A: 255}
	colorOrbit      = color.RGBA{R: 60, G: 70, B: 120, A: 255}
	colorPanel      = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	colorPanelEdge  = color.RGBA{R: 90, G: 100, B: 160, A: 255}
	colorHazard     = color.RGBA{R: 235, G: 64, B: 52, A: 255}
	colorGold       = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	colorBlue       = color.RGBA{R: 60, G: 150, B: 255, A: 255}
	colorPurple     = color.RGBA{R: 180, G: 90, B: 255, A: 255}
	colorPlayer     = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	colorHighlight  = color.RGBA{R: 255, G: 220, B: 120, A: 60}
)

// 实体绘制半径（像素）
const (
	hazardDrawRadius = 10
	pickupDrawRadius = 8
	playerDrawRadius = 9
)

// pickupColor 返回拾取物颜色
func pickupColor(kind components.PickupKind) color.RGBA {
	switch kind {
	case components.PickupBlue:
		return colorBlue
	case components.PickupPurple:
		return colorPurple
	default:
		return colorGold
	}
}

// playerColor 返回玩家在不同状态下的颜色
func playerColor(state components.DisplayState) color.RGBA {
	switch state {
	case components.DisplaySpawning:
		return color.RGBA{R: 150, G: 150, B: 150, A: 255}
	case components.DisplayInvincible:
		return colorPurple
	case components.DisplayTimeDrag:
		return colorBlue
	case components.DisplayBulletTime:
		return colorGold
	case components.DisplayOverclock:
		return color.RGBA{R: 80, G: 255, B: 160, A: 255}
	default:
		return colorPlayer
	}
}

// formatLeaderboardLines 生成排行榜面板的文本行
//
// 每行形如 " 1. bob          W5  42.3s"；空榜时给出提示。
func formatLeaderboardLines(entries []game.ScoreEntry) []string {
	if len(entries) == 0 {
		return []string{"No runs yet"}
	}

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%2d. %-12s W%-2d %5.1fs", i+1, e.Name, e.Wave, e.Time))
	}
	return lines
}

// formatHUDLines 生成 HUD 面板的文本行
func formatHUDLines(wave int, elapsed float64, state components.DisplayState) []string {
	return []string{
		fmt.Sprintf("Wave  %d", wave),
		fmt.Sprintf("Time  %.1fs", elapsed),
		fmt.Sprintf("State %s", state),
	}
}

// drawPanel 绘制半透明面板
func drawPanel(screen *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x, y, w, h, colorPanel, false)
	vector.StrokeRect(screen, x, y, w, h, 1, colorPanelEdge, false)
}

// drawLeaderboardPanel 在右上角绘制排行榜
//
// highlight 为需要高亮的名次（从 1 开始），0 表示不高亮。
func drawLeaderboardPanel(screen *ebiten.Image, entries []game.ScoreEntry, highlight int) {
	x := float32(config.LeaderboardPanelX)
	y := float32(config.LeaderboardPanelY)
	drawPanel(screen, x, y, config.LeaderboardPanelWidth, config.LeaderboardPanelHeight)

	ebitenutil.DebugPrintAt(screen, "TOP RUNS", config.LeaderboardPanelX+10, config.LeaderboardPanelY+6)
	for i, line := range formatLeaderboardLines(entries) {
		rowY := config.LeaderboardPanelY + 28 + i*config.LeaderboardRowHeight
		if i+1 == highlight {
			vector.DrawFilledRect(screen, x+4, float32(rowY), config.LeaderboardPanelWidth-8, config.LeaderboardRowHeight, colorHighlight, false)
		}
		ebitenutil.DebugPrintAt(screen, line, config.LeaderboardPanelX+10, rowY)
	}
}

// drawCenteredText 以 x 为中心绘制调试字体文本
func drawCenteredText(screen *ebiten.Image, s string, centerX, y int) {
	// 调试字体每个字符宽 6 像素
	ebitenutil.DebugPrintAt(screen, s, centerX-len(s)*6/2, y)
}

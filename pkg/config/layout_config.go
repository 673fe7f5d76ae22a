package config

// 布局配置常量
// 本文件定义了逻辑屏幕尺寸以及 HUD、排行榜面板的位置

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 960

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 720

	// ArenaCenterX 轨道圆心X坐标
	ArenaCenterX = GameWindowWidth / 2.0

	// ArenaCenterY 轨道圆心Y坐标
	ArenaCenterY = GameWindowHeight / 2.0
)

// HUD 面板（左上角）
const (
	HUDPanelX      = 16
	HUDPanelY      = 16
	HUDPanelWidth  = 230
	HUDPanelHeight = 96
)

// 排行榜面板（右上角）
const (
	LeaderboardPanelWidth  = 220
	LeaderboardPanelHeight = 230
	LeaderboardPanelX      = GameWindowWidth - LeaderboardPanelWidth - 20
	LeaderboardPanelY      = 18
	LeaderboardRowHeight   = 18
)

// GetArenaCenter 返回轨道圆心坐标
func GetArenaCenter() (float64, float64) {
	return ArenaCenterX, ArenaCenterY
}

// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/decker502/echoorbit/pkg/config"
	"github.com/decker502/echoorbit/pkg/embedded"
	"github.com/decker502/echoorbit/pkg/game"
	"github.com/decker502/echoorbit/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// embeddedTuningPath 嵌入的调参文件
const embeddedTuningPath = "data/tuning.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// TuningPath 指定外部调参文件，为空则使用嵌入的 data/tuning.yaml
	TuningPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	state                    *game.GameState
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning, err := loadTuning(cfg.TuningPath)
	if err != nil {
		return nil, fmt.Errorf("调参配置加载失败: %w", err)
	}
	log.Printf("[App] Tuning loaded: %d orbits", len(tuning.Arena.Orbits))

	state := game.NewGameState(game.OpenStore(game.AppName), tuning)

	if state.GetSettingsManager().GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(id game.SceneID) game.Scene {
		switch id {
		case game.SceneStart:
			return scenes.NewStartScene(state, sceneManager)
		case game.SceneGame:
			return scenes.NewGameScene(state, sceneManager)
		default:
			// 结算界面需要结束的那一局，由 GameScene 直接创建
			return nil
		}
	})
	sceneManager.Goto(game.SceneStart)

	return &App{
		sceneManager: sceneManager,
		state:        state,
		verbose:      cfg.Verbose,
	}, nil
}

// loadTuning 加载调参配置
//
// 显式指定的文件必须存在且合法；嵌入文件缺失时使用默认配置。
func loadTuning(path string) (*config.TuningConfig, error) {
	if path != "" {
		return config.LoadTuningConfig(path)
	}

	data, err := embedded.ReadFile(embeddedTuningPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, embedded.ErrNotInitialized) {
			log.Printf("[App] %s not available (%v), using default tuning", embeddedTuningPath, err)
			return config.DefaultTuning(), nil
		}
		return nil, err
	}

	return config.ParseTuning(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并记住选择
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if fullscreen {
		ebiten.SetFullscreen(true)
	} else {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	settings := a.state.GetSettingsManager()
	settings.SetFullscreen(fullscreen)
	if err := settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// SaveOnExit 窗口关闭时让当前场景保存状态
func (a *App) SaveOnExit() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: current scene failed to save on exit")
		}
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

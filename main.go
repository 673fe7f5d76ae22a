package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/echoorbit/pkg/app"
	"github.com/decker502/echoorbit/pkg/config"
	"github.com/decker502/echoorbit/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	tuningPath = flag.String("tuning", "", "外部调参文件路径（默认使用内置 data/tuning.yaml）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		TuningPath: *tuningPath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Echo Orbit: Endless Dash")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 关闭窗口时先让当前场景保存成绩
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

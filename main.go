// Command valentine 打开一张会"逃跑"的情人节贺卡
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose            输出详细日志
//	--content <path>     覆盖 data/content.yaml
//	--effects <path>     覆盖 data/effects.yaml
//	--fullscreen         全屏启动（F11 切换）
//	--phone              使用 390x844 窗口模拟手机屏幕
//	--seed <n>           随机种子（0 = 按时间）
package main

import (
	"flag"
	"log"

	"github.com/decker502/valentine/pkg/app"
	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/embedded"
	"github.com/decker502/valentine/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	contentFlag    = flag.String("content", "", "Path to a content YAML file overriding the embedded one")
	effectsFlag    = flag.String("effects", "", "Path to an effects YAML file overriding the embedded one")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen mode")
	phoneFlag      = flag.Bool("phone", false, "Use a 390x844 window to emulate a phone screen")
	seedFlag       = flag.Int64("seed", 0, "Random seed (0 = time based)")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verboseFlag,
		ContentPath: *contentFlag,
		EffectsPath: *effectsFlag,
		Seed:        *seedFlag,
	})
	if err != nil {
		log.Fatalf("贺卡初始化失败: %v", err)
	}
	defer gameApp.Close()

	if !utils.IsMobile() {
		width, height := config.GameWindowWidth, config.GameWindowHeight
		if *phoneFlag {
			width, height = config.MobileEmulateWidth, config.MobileEmulateHeight
		}
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowTitle(gameApp.WindowTitle())
	ebiten.SetFullscreen(*fullscreenFlag)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Printf("[Main] RunGame exited with error: %v", err)
	}
}

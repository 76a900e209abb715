// Package app 提供贺卡应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/game"
	"github.com/decker502/valentine/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultMaxImageSide 解码后图片帧的最长边
const DefaultMaxImageSide = 512

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ContentPath 文案配置路径，为空使用嵌入的 data/content.yaml
	ContentPath string
	// EffectsPath 特效配置路径，为空使用嵌入的 data/effects.yaml
	EffectsPath string
	// Seed 随机种子，0 表示按当前时间播种
	Seed int64
}

// App 是贺卡应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	resourceManager *game.ResourceManager
	content         *config.ContentConfig
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	contentPath := cfg.ContentPath
	if contentPath == "" {
		contentPath = config.DefaultContentPath
	}
	content, err := config.LoadContentConfig(contentPath)
	if err != nil {
		return nil, fmt.Errorf("文案配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载文案配置: %s", contentPath)

	effectsPath := cfg.EffectsPath
	if effectsPath == "" {
		effectsPath = config.DefaultEffectsPath
	}
	effects, err := config.LoadEffectsConfig(effectsPath)
	if err != nil {
		return nil, fmt.Errorf("特效配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载特效配置: %s", effectsPath)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	resourceManager := game.NewResourceManager(nil)
	resourceManager.SetMaxImageSide(DefaultMaxImageSide)

	scene, err := scenes.NewValentineScene(scenes.Options{
		Content:   content,
		Effects:   effects,
		Resources: resourceManager,
		Rand:      rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		resourceManager.Close()
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager:    sceneManager,
		resourceManager: resourceManager,
		content:         content,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
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
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 画面与窗口同尺寸，这里只需要线性滤波和黑色底色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑画面跟随窗口（或手机屏幕）尺寸，按钮的逃跑范围就是整个视口
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return config.GameWindowWidth, config.GameWindowHeight
	}
	a.sceneManager.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// WindowTitle 窗口标题
func (a *App) WindowTitle() string {
	return a.content.WindowTitle()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Close 关闭当前场景并取消所有后台加载
// 程序退出时调用
func (a *App) Close() {
	a.sceneManager.Close()
	a.resourceManager.Close()
	log.Printf("[App] Closed")
}

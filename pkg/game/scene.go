package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the card (e.g., the question, the celebration).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，用于在场景被替换或程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - SceneManager 切换到另一个场景
//   - 游戏窗口关闭（App.Close）
//
// Close 必须可以重复调用
type Closer interface {
	Close()
}

// Resizable 是一个可选接口，用于接收视口尺寸变化
//
// 窗口缩放、手机旋转、全屏切换都会改变视口；场景需要在事件发生时
// 同步读取视口尺寸（例如逃跑按钮的随机范围）
type Resizable interface {
	SetViewport(width, height float64)
}

package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the card's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene

	viewportWidth  float64
	viewportHeight float64
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is closed if it implements Closer.
// The new scene receives the last known viewport size if it implements Resizable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	sm.closeCurrent()
	sm.currentScene = scene

	if scene == nil {
		return
	}
	if r, ok := scene.(Resizable); ok && sm.viewportWidth > 0 && sm.viewportHeight > 0 {
		r.SetViewport(sm.viewportWidth, sm.viewportHeight)
	}
	log.Printf("[SceneManager] 切换场景: %T", scene)
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// SetViewport 记录视口尺寸并转发给当前场景
// 尺寸未变化时不转发
func (sm *SceneManager) SetViewport(width, height float64) {
	if width == sm.viewportWidth && height == sm.viewportHeight {
		return
	}
	sm.viewportWidth = width
	sm.viewportHeight = height

	if r, ok := sm.currentScene.(Resizable); ok {
		r.SetViewport(width, height)
	}
}

// Viewport 返回最近一次记录的视口尺寸
func (sm *SceneManager) Viewport() (width, height float64) {
	return sm.viewportWidth, sm.viewportHeight
}

// Close 关闭当前场景（程序退出时调用）
func (sm *SceneManager) Close() {
	sm.closeCurrent()
	sm.currentScene = nil
}

func (sm *SceneManager) closeCurrent() {
	if c, ok := sm.currentScene.(Closer); ok {
		log.Printf("[SceneManager] 关闭场景: %T", sm.currentScene)
		c.Close()
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

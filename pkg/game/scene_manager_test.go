package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// closingScene 实现 Closer 和 Resizable 的场景
type closingScene struct {
	MockScene
	closed         int
	viewportWidth  float64
	viewportHeight float64
	resized        int
}

func (c *closingScene) Close() {
	c.closed++
}

func (c *closingScene) SetViewport(width, height float64) {
	c.viewportWidth, c.viewportHeight = width, height
	c.resized++
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 1.0 / 60
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update and Draw handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016) // Should not panic
	sm.Draw(ebiten.NewImage(40, 40))
	sm.Close()
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(ebiten.NewImage(40, 40))

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerSwitchClosesPrevious 切换场景时关闭旧场景
func TestSceneManagerSwitchClosesPrevious(t *testing.T) {
	sm := NewSceneManager()
	first := &closingScene{}
	second := &closingScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first) // 同一场景不重复关闭
	if first.closed != 0 {
		t.Fatalf("first.closed = %d, expected 0", first.closed)
	}

	sm.SwitchTo(second)
	if first.closed != 1 {
		t.Errorf("first.closed = %d, expected 1", first.closed)
	}
	sm.Update(0.016)
	if first.updateCalled || !second.updateCalled {
		t.Error("only the current scene should be updated")
	}

	sm.Close()
	if second.closed != 1 {
		t.Errorf("second.closed = %d, expected 1", second.closed)
	}
	if sm.GetCurrentScene() != nil {
		t.Error("current scene should be nil after Close")
	}
}

// TestSceneManagerViewport 视口尺寸转发给当前场景和新场景
func TestSceneManagerViewport(t *testing.T) {
	sm := NewSceneManager()
	scene := &closingScene{}
	sm.SwitchTo(scene)

	sm.SetViewport(390, 844)
	sm.SetViewport(390, 844)
	if scene.resized != 1 {
		t.Errorf("resized = %d, expected 1 (unchanged size is not forwarded)", scene.resized)
	}
	if scene.viewportWidth != 390 || scene.viewportHeight != 844 {
		t.Errorf("viewport = %vx%v, expected 390x844", scene.viewportWidth, scene.viewportHeight)
	}

	next := &closingScene{}
	sm.SwitchTo(next)
	if next.viewportWidth != 390 || next.viewportHeight != 844 {
		t.Errorf("new scene viewport = %vx%v, expected 390x844", next.viewportWidth, next.viewportHeight)
	}
	if w, h := sm.Viewport(); w != 390 || h != 844 {
		t.Errorf("Viewport() = %vx%v", w, h)
	}
}

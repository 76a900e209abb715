// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerKind 指针来源
type PointerKind int

const (
	// PointerMouse 鼠标（桌面设备）
	PointerMouse PointerKind = iota
	// PointerTouch 触摸（移动设备）
	PointerTouch
)

// PointerSample 某一帧的指针状态
// 统一鼠标与触摸输入，触摸优先（只跟踪第一根手指）
type PointerSample struct {
	Kind PointerKind
	// X, Y 指针位置；触摸刚释放时为释放前一帧的位置
	X, Y float64
	// Pressed 鼠标左键或手指是否处于按下状态
	Pressed bool
	// JustPressed 本帧刚按下
	JustPressed bool
	// JustReleased 本帧刚释放
	JustReleased bool
	// Present 指针是否存在（鼠标总是存在；触摸只在手指接触或刚释放时存在）
	Present bool
}

// 保存最后一次触摸，用于触摸释放时获取位置
var (
	lastTouchID       ebiten.TouchID
	hasLastTouch      bool
	lastTouchX        int
	lastTouchY        int
	touchSeenThisRun  bool
	reusableTouchIDs  []ebiten.TouchID
	reusableReleased  []ebiten.TouchID
	reusableJustTouch []ebiten.TouchID
)

// SamplePointer 读取当前帧的指针状态
// 每帧（Update 中）调用一次
func SamplePointer() PointerSample {
	reusableJustTouch = inpututil.AppendJustPressedTouchIDs(reusableJustTouch[:0])
	reusableTouchIDs = ebiten.AppendTouchIDs(reusableTouchIDs[:0])
	reusableReleased = inpututil.AppendJustReleasedTouchIDs(reusableReleased[:0])

	// 首先检查触摸输入（移动设备）
	if len(reusableJustTouch) > 0 {
		id := reusableJustTouch[0]
		x, y := ebiten.TouchPosition(id)
		rememberTouch(id, x, y)
		return PointerSample{Kind: PointerTouch, X: float64(x), Y: float64(y), Pressed: true, JustPressed: true, Present: true}
	}

	if hasLastTouch {
		for _, id := range reusableTouchIDs {
			if id == lastTouchID {
				x, y := ebiten.TouchPosition(id)
				rememberTouch(id, x, y)
				return PointerSample{Kind: PointerTouch, X: float64(x), Y: float64(y), Pressed: true, Present: true}
			}
		}
		for _, id := range reusableReleased {
			if id == lastTouchID {
				hasLastTouch = false
				x, y := inpututil.TouchPositionInPreviousTick(id)
				if x == 0 && y == 0 {
					x, y = lastTouchX, lastTouchY
				}
				return PointerSample{Kind: PointerTouch, X: float64(x), Y: float64(y), JustReleased: true, Present: true}
			}
		}
		hasLastTouch = false
	}

	// 出现过触摸的设备上，没有手指时不再把鼠标位置当作悬停
	if touchSeenThisRun {
		return PointerSample{Kind: PointerTouch}
	}

	// 其次检查鼠标输入（桌面设备）
	x, y := ebiten.CursorPosition()
	return PointerSample{
		Kind:         PointerMouse,
		X:            float64(x),
		Y:            float64(y),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Present:      true,
	}
}

func rememberTouch(id ebiten.TouchID, x, y int) {
	lastTouchID = id
	hasLastTouch = true
	lastTouchX, lastTouchY = x, y
	touchSeenThisRun = true
}

// Moved 与上一帧相比位置是否变化
func (s PointerSample) Moved(prev PointerSample) bool {
	return s.X != prev.X || s.Y != prev.Y
}

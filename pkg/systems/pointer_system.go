package systems

import (
	"github.com/decker502/valentine/pkg/evasion"
	"github.com/decker502/valentine/pkg/utils"
)

// PointerEventType 目标元素上的指针事件类型
type PointerEventType int

const (
	// PointerEnter 指针进入目标（鼠标悬停开始，或手指按在目标上）
	PointerEnter PointerEventType = iota
	// PointerLeave 指针离开目标
	PointerLeave
	// PointerMove 指针在目标内移动；触摸时跟随在目标上按下的手指，即使已移出目标
	PointerMove
	// PointerDown 在目标内按下
	PointerDown
	// PointerUp 在目标上按下后释放（无论释放位置）
	PointerUp
	// PointerClick 在目标内按下并在目标内释放
	PointerClick
)

// String returns the event name for logging.
func (t PointerEventType) String() string {
	switch t {
	case PointerEnter:
		return "enter"
	case PointerLeave:
		return "leave"
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerClick:
		return "click"
	default:
		return "unknown"
	}
}

// PointerEvent 派发给目标的事件
type PointerEvent struct {
	Type PointerEventType
	Kind utils.PointerKind
	X, Y float64
}

// PointerSource 每帧提供一次指针采样；测试中可替换为假数据源
type PointerSource func() utils.PointerSample

// BoundsFunc 返回目标当前的屏幕矩形；ok 为 false 表示目标尚未挂载或不可见
type BoundsFunc func() (rect evasion.Rect, ok bool)

// PointerTarget 注册到 PointerSystem 的可交互区域
type PointerTarget struct {
	name    string
	bounds  BoundsFunc
	handler func(PointerEvent)

	hovered bool
	pressed bool
}

// Hovered 指针当前是否在目标上
func (t *PointerTarget) Hovered() bool {
	return t.hovered
}

// Pressed 是否有在目标上开始、尚未释放的按压
func (t *PointerTarget) Pressed() bool {
	return t.pressed
}

// Name 目标名称
func (t *PointerTarget) Name() string {
	return t.name
}

// PointerSystem 指针事件系统
// 每帧对比指针采样与上一帧，按目标矩形生成进入/移动/按下/点击等事件
//
// 职责：
//   - 统一鼠标与触摸（采样由 utils.SamplePointer 提供）
//   - 目标矩形每帧只读取一次（事件发生时的同步几何）
//   - 点击 = 目标内按下 + 目标内释放
type PointerSystem struct {
	source  PointerSource
	prev    utils.PointerSample
	targets []*PointerTarget
}

// NewPointerSystem 创建指针系统；source 为 nil 时使用真实输入
func NewPointerSystem(source PointerSource) *PointerSystem {
	if source == nil {
		source = utils.SamplePointer
	}
	return &PointerSystem{source: source}
}

// Register 注册目标；先注册的目标先收到事件
func (s *PointerSystem) Register(name string, bounds BoundsFunc, handler func(PointerEvent)) *PointerTarget {
	t := &PointerTarget{name: name, bounds: bounds, handler: handler}
	s.targets = append(s.targets, t)
	return t
}

// Last 最近一次采样
func (s *PointerSystem) Last() utils.PointerSample {
	return s.prev
}

// Update 读取一次采样并派发事件
func (s *PointerSystem) Update() {
	sample := s.source()
	moved := sample.Present && s.prev.Present && sample.Moved(s.prev)

	// 先为所有目标读取矩形，避免前一个目标的回调改变布局后影响本帧判定
	rects := make([]evasion.Rect, len(s.targets))
	mounted := make([]bool, len(s.targets))
	for i, t := range s.targets {
		if t.bounds != nil {
			rects[i], mounted[i] = t.bounds()
		}
	}

	for i, t := range s.targets {
		if !mounted[i] {
			t.hovered = false
			t.pressed = false
			continue
		}
		s.dispatch(t, rects[i], sample, moved)
	}

	s.prev = sample
}

func (s *PointerSystem) dispatch(t *PointerTarget, rect evasion.Rect, sample utils.PointerSample, moved bool) {
	inside := sample.Present && rect.Contains(sample.X, sample.Y)
	if sample.Kind == utils.PointerTouch && !sample.Pressed && !sample.JustReleased {
		// 没有手指时触摸指针不存在
		inside = false
	}

	emit := func(typ PointerEventType) {
		if t.handler != nil {
			t.handler(PointerEvent{Type: typ, Kind: sample.Kind, X: sample.X, Y: sample.Y})
		}
	}

	if sample.JustPressed && inside {
		t.pressed = true
		emit(PointerDown)
	}

	switch {
	case inside && !t.hovered:
		t.hovered = true
		emit(PointerEnter)
	case !inside && t.hovered:
		t.hovered = false
		emit(PointerLeave)
	case moved && (inside || (t.pressed && sample.Pressed && sample.Kind == utils.PointerTouch)):
		emit(PointerMove)
	}

	if sample.JustReleased {
		wasPressed := t.pressed
		t.pressed = false
		if wasPressed {
			emit(PointerUp)
			if inside {
				emit(PointerClick)
			}
		}
		if sample.Kind == utils.PointerTouch && t.hovered {
			t.hovered = false
			emit(PointerLeave)
		}
	}
}

// Package evasion 让"不"按钮始终躲开指针和手指
//
// Relocate 是纯函数；Controller 在其上加了触发阈值判断、首次移动时切换到
// 视口固定布局，以及把结果写入 PositionSink。
package evasion

import (
	"log"
	"math/rand"
)

// Trigger 触发逃跑的原始事件类型
type Trigger int

const (
	// TriggerPointerEnter 鼠标进入按钮
	TriggerPointerEnter Trigger = iota
	// TriggerPointerMove 鼠标在按钮上移动
	TriggerPointerMove
	// TriggerTouchStart 手指按下
	TriggerTouchStart
	// TriggerTouchMove 手指移动
	TriggerTouchMove
	// TriggerClick 点击/轻触按钮
	TriggerClick
)

func (t Trigger) String() string {
	switch t {
	case TriggerPointerEnter:
		return "pointer-enter"
	case TriggerPointerMove:
		return "pointer-move"
	case TriggerTouchStart:
		return "touch-start"
	case TriggerTouchMove:
		return "touch-move"
	case TriggerClick:
		return "click"
	default:
		return "unknown"
	}
}

// Event 一次指针/触摸事件，坐标为视口像素
type Event struct {
	Trigger Trigger
	X       float64
	Y       float64
}

// Geometry 事件发生时从渲染面同步读取的几何信息
//
// Container 或 Button 为 nil 表示尚未挂载，此时事件被忽略。
type Geometry struct {
	Container   *Rect
	Button      *Rect
	Viewport    Size
	Affirmative *Rect
}

// PositionSink 把新位置应用到渲染面
type PositionSink interface {
	SetPosition(x, y float64)
	SetTransition(enabled bool)
}

// Detacher 可选能力：从流式布局切换为视口固定布局，固定在 (x, y)
type Detacher interface {
	DetachAt(x, y float64)
}

// Outcome Handle 的结果
type Outcome struct {
	// Relocated 按钮是否被移动
	Relocated bool
	// Suppressed 是否吞掉按钮本身的点击效果
	Suppressed bool
}

// Controller 逃跑按钮控制器，持有按钮的当前位置
type Controller struct {
	params   Params
	rng      *rand.Rand
	sink     PositionSink
	detached bool
	position ButtonPosition

	moves       int
	unsatisfied int
}

// NewController 创建控制器
func NewController(params Params, rng *rand.Rand, sink PositionSink) *Controller {
	return &Controller{
		params: params,
		rng:    rng,
		sink:   sink,
	}
}

// ShouldRelocate 判断事件是否达到触发条件
//
// 进入、按下、点击无条件触发；鼠标移动距离按钮中心小于 PointerThreshold、
// 触摸移动小于 TouchThreshold 时触发。
func (c *Controller) ShouldRelocate(ev Event, button Rect) bool {
	switch ev.Trigger {
	case TriggerPointerEnter, TriggerTouchStart, TriggerClick:
		return true
	case TriggerPointerMove:
		return button.DistanceToCenter(ev.X, ev.Y) < c.params.PointerThreshold
	case TriggerTouchMove:
		return button.DistanceToCenter(ev.X, ev.Y) < c.params.TouchThreshold
	default:
		return false
	}
}

// Handle 处理一个事件
//
// 点击永远被吞掉（"不"永远无法完成）；几何信息缺失时不做任何事。
func (c *Controller) Handle(ev Event, geo Geometry) Outcome {
	out := Outcome{Suppressed: ev.Trigger == TriggerClick}

	if geo.Container == nil || geo.Button == nil {
		return out
	}
	if !c.ShouldRelocate(ev, *geo.Button) {
		return out
	}

	var avoid *Rect
	if c.params.AvoidAffirmative {
		avoid = geo.Affirmative
	}

	pos, satisfied := Relocate(c.rng, c.params, Size{W: geo.Button.W, H: geo.Button.H}, geo.Viewport, avoid)
	if !satisfied {
		c.unsatisfied++
		log.Printf("[Evasion] no free spot after %d attempts, using last candidate (%.0f, %.0f)",
			c.params.MaxAttempts, pos.X, pos.Y)
	}

	c.apply(*geo.Button, pos)
	out.Relocated = true
	return out
}

func (c *Controller) apply(current Rect, pos ButtonPosition) {
	if !c.detached {
		if d, ok := c.sink.(Detacher); ok {
			d.DetachAt(current.X, current.Y)
		}
		c.sink.SetTransition(false)
		c.detached = true
	} else if c.moves == 1 {
		c.sink.SetTransition(c.params.TransitionSeconds > 0)
	}

	c.sink.SetPosition(pos.X, pos.Y)
	c.position = pos
	c.moves++
}

// Position 当前位置；尚未移动过时 ok 为 false
func (c *Controller) Position() (pos ButtonPosition, ok bool) {
	return c.position, c.detached
}

// Moves 已移动次数
func (c *Controller) Moves() int {
	return c.moves
}

// Unsatisfied 避让失败（接受最后候选）的次数
func (c *Controller) Unsatisfied() int {
	return c.unsatisfied
}

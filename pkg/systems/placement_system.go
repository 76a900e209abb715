package systems

import (
	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/utils"
)

// PlacementSystem 逃跑按钮的定位系统
// 实现 evasion.PositionSink 与 evasion.Detacher：控制器只给出目标位置，
// 本系统负责在每帧把按钮从当前位置缓动到目标位置
type PlacementSystem struct {
	placement *components.FixedPlacement
	easing    func(float64) float64
}

// NewPlacementSystem 创建定位系统
// transitionSeconds 为每次移动的过渡时长（<=0 表示瞬移）
func NewPlacementSystem(placement *components.FixedPlacement, transitionSeconds float64) *PlacementSystem {
	placement.Duration = transitionSeconds
	return &PlacementSystem{
		placement: placement,
		easing:    utils.EaseOutCubic,
	}
}

// DetachAt 脱离流式布局，固定在当前屏幕位置
func (s *PlacementSystem) DetachAt(x, y float64) {
	p := s.placement
	p.Detached = true
	p.X, p.Y = x, y
	p.FromX, p.FromY = x, y
	p.ToX, p.ToY = x, y
	p.Elapsed = p.Duration
}

// SetTransition 打开或关闭过渡动画
func (s *PlacementSystem) SetTransition(enabled bool) {
	s.placement.Transition = enabled
}

// SetPosition 设置目标位置
// 过渡中被再次触发时，从当前（动画中的）位置重新开始过渡
func (s *PlacementSystem) SetPosition(x, y float64) {
	p := s.placement
	p.Detached = true
	p.ToX, p.ToY = x, y

	if !p.Transition || p.Duration <= 0 {
		p.X, p.Y = x, y
		p.FromX, p.FromY = x, y
		p.Elapsed = p.Duration
		return
	}

	p.FromX, p.FromY = p.X, p.Y
	p.Elapsed = 0
}

// Update 推进过渡动画
func (s *PlacementSystem) Update(deltaTime float64) {
	p := s.placement
	if !p.Detached || !p.Moving() {
		return
	}

	p.Elapsed += deltaTime
	t := utils.Clamp01(p.Elapsed / p.Duration)
	eased := s.easing(t)
	p.X = utils.Lerp(p.FromX, p.ToX, eased)
	p.Y = utils.Lerp(p.FromY, p.ToY, eased)
	if t >= 1 {
		p.X, p.Y = p.ToX, p.ToY
	}
}

// Position 当前绘制位置；detached 为 false 时按钮仍在流式布局中
func (s *PlacementSystem) Position() (x, y float64, detached bool) {
	return s.placement.X, s.placement.Y, s.placement.Detached
}

// Target 本次过渡的终点
func (s *PlacementSystem) Target() (x, y float64) {
	return s.placement.ToX, s.placement.ToY
}

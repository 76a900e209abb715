package evasion

import "math"

// Size 宽高（像素）
type Size struct {
	W float64
	H float64
}

// Rect 轴对齐矩形，(X, Y) 为左上角，单位像素
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Empty 宽或高不为正时视为空矩形
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Center 返回矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Expand 向四周各扩展 pad 像素
func (r Rect) Expand(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}

// Intersects 两个矩形是否有面积重叠（仅边相接不算）
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains 点是否在矩形内（含左上边，不含右下边）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// DistanceToCenter 点到矩形中心的直线距离
func (r Rect) DistanceToCenter(x, y float64) float64 {
	cx, cy := r.Center()
	return math.Hypot(x-cx, y-cy)
}

// ButtonPosition 逃跑按钮当前的视口固定位置与尺寸
type ButtonPosition struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Rect 转换为矩形
func (p ButtonPosition) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

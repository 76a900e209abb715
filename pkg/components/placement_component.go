package components

// FixedPlacement 视口固定定位
//
// 按钮第一次逃跑之前处于流式布局（Detached 为 false，位置由场景布局决定）；
// 之后固定在视口坐标 (X, Y)，移动时从 From 插值到 To。
type FixedPlacement struct {
	// Detached 是否已脱离流式布局
	Detached bool

	// X, Y 当前绘制位置（左上角）
	X, Y float64

	// FromX, FromY 本次过渡起点
	FromX, FromY float64
	// ToX, ToY 本次过渡终点
	ToX, ToY float64

	// Transition 是否启用过渡动画
	Transition bool
	// Elapsed 本次过渡已进行时间（秒）
	Elapsed float64
	// Duration 过渡时长（秒）
	Duration float64
}

// Moving 是否正处于过渡中
func (p *FixedPlacement) Moving() bool {
	return p.Transition && p.Duration > 0 && p.Elapsed < p.Duration &&
		(p.X != p.ToX || p.Y != p.ToY)
}

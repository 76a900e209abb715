package evasion

import (
	"math"
	"math/rand"
)

// Relocate 为逃跑按钮随机挑选一个新位置
//
// 候选位置在 [margin, vw-w-margin] × [margin, vh-h-margin] 内均匀采样；
// 视口放不下按钮加边距时范围退化为 margin 本身。
//
// affirmative 非空时反复采样（最多 MaxAttempts 次），直到候选矩形外扩 Padding
// 后不再与之相交。satisfied 为 false 表示次数用尽，返回的是最后一次候选。
func Relocate(rng *rand.Rand, p Params, button Size, viewport Size, affirmative *Rect) (pos ButtonPosition, satisfied bool) {
	w, h := button.W, button.H
	if w <= 0 {
		w = p.DefaultWidth
	}
	if h <= 0 {
		h = p.DefaultHeight
	}

	spanX := math.Max(0, viewport.W-w-2*p.Margin)
	spanY := math.Max(0, viewport.H-h-2*p.Margin)

	draw := func() ButtonPosition {
		return ButtonPosition{
			X:      p.Margin + rng.Float64()*spanX,
			Y:      p.Margin + rng.Float64()*spanY,
			Width:  w,
			Height: h,
		}
	}

	if affirmative == nil || affirmative.Empty() {
		return draw(), true
	}

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		pos = draw()
		if !pos.Rect().Expand(p.Padding).Intersects(*affirmative) {
			return pos, true
		}
	}
	return pos, false
}

package systems

import (
	"image/color"

	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/evasion"
	"github.com/decker502/valentine/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonSystem 按钮系统
// 负责按钮的尺寸计算、悬停/按下缩放动画和绘制
//
// 职责：
//   - Measure：根据文字尺寸 + 内边距计算按钮宽高
//   - Update：按 State 把 Scale 平滑插值到目标值
//   - Draw：圆角矩形背景 + 边框 + 居中文字，以中心为原点缩放
//
// 交互判定（悬停/按下/点击）由 PointerSystem 负责
type ButtonSystem struct {
	paddingX, paddingY float64
	cornerRadius       float64
	scaleSpeed         float64
}

// NewButtonSystem 创建按钮系统
func NewButtonSystem(paddingX, paddingY, cornerRadius, scaleSpeed float64) *ButtonSystem {
	return &ButtonSystem{
		paddingX:     paddingX,
		paddingY:     paddingY,
		cornerRadius: cornerRadius,
		scaleSpeed:   scaleSpeed,
	}
}

// Measure 计算按钮尺寸
// 字体为空（测试或资源加载失败）时宽高保持为 0，由逃跑算法回退到默认尺寸
func (s *ButtonSystem) Measure(b *components.ButtonComponent) {
	if b.Font == nil {
		b.Width, b.Height = 0, 0
		return
	}
	w, h := utils.MeasureText(b.Text, b.Font)
	w += iconsWidth(b)
	b.Width = w + 2*s.paddingX
	b.Height = h + 2*s.paddingY
}

// Bounds 按钮未缩放时的屏幕矩形
func Bounds(b *components.ButtonComponent) evasion.Rect {
	return evasion.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// TargetScale 当前状态对应的目标缩放
func TargetScale(b *components.ButtonComponent) float64 {
	switch b.State {
	case components.UIPressed:
		if b.PressScale > 0 {
			return b.PressScale
		}
	case components.UIHovered:
		if b.HoverScale > 0 {
			return b.HoverScale
		}
	}
	return 1
}

// Update 更新按钮缩放动画
func (s *ButtonSystem) Update(b *components.ButtonComponent, deltaTime float64) {
	if b.Scale == 0 {
		b.Scale = 1
	}
	target := TargetScale(b)
	if s.scaleSpeed <= 0 {
		b.Scale = target
		return
	}
	// 指数逼近，帧率无关
	k := utils.Clamp01(deltaTime * s.scaleSpeed)
	b.Scale = utils.Lerp(b.Scale, target, k)
	if d := b.Scale - target; d < 0.001 && d > -0.001 {
		b.Scale = target
	}
}

// Draw 绘制按钮
// alpha 为整体透明度（场景淡出时使用）
func (s *ButtonSystem) Draw(screen *ebiten.Image, b *components.ButtonComponent, alpha float64) {
	if !b.Visible || alpha <= 0 || b.Width <= 0 || b.Height <= 0 {
		return
	}

	scale := b.Scale
	if scale == 0 {
		scale = 1
	}
	cx := b.X + b.Width/2
	cy := b.Y + b.Height/2
	w := b.Width * scale
	h := b.Height * scale
	x := cx - w/2
	y := cy - h/2

	path := roundedRectPath(float32(x), float32(y), float32(w), float32(h), float32(s.cornerRadius*scale))
	fillPath(screen, path, b.FillColor, float32(alpha))
	if b.BorderColor.A > 0 && b.BorderWidth > 0 {
		strokePath(screen, path, b.BorderColor, b.BorderWidth*float32(scale), float32(alpha))
	}

	if b.Font == nil {
		return
	}
	DrawLabel(screen, b.Text, b.Icons, b.Font, cx, cy, scale, b.TextColor, alpha)
}

// iconsWidth 图标占用的宽度（与字号等高，前面留一个间隔）
func iconsWidth(b *components.ButtonComponent) float64 {
	if len(b.Icons) == 0 || b.Font == nil {
		return 0
	}
	size := b.Font.Size
	return iconGap(size) + float64(len(b.Icons))*size
}

func iconGap(size float64) float64 {
	return size * 0.3
}

// DrawLabel 以 (cx, cy) 为中心绘制一行文字，后面跟着矢量图标
func DrawLabel(screen *ebiten.Image, label string, icons []rune, font *text.GoTextFace, cx, cy, scale float64, clr color.RGBA, alpha float64) {
	textW := utils.MeasureTextWidth(label, font)
	size := font.Size
	total := textW
	if len(icons) > 0 {
		if label != "" {
			total += iconGap(size)
		}
		total += float64(len(icons)) * size
	}

	left := cx - total*scale/2
	if label != "" {
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignStart
		op.SecondaryAlign = text.AlignCenter
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(left, cy)
		op.ColorScale.ScaleWithColor(clr)
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(screen, label, font, op)
	}

	x := left + textW*scale
	if label != "" {
		x += iconGap(size) * scale
	}
	for _, r := range icons {
		DrawIcon(screen, r, x+size*scale/2, cy, size*scale, alpha)
		x += size * scale
	}
}

package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/valentine/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 矢量图形辅助函数：按钮、粒子、图片占位都用路径绘制，不依赖图片资源

// fillPath 以指定颜色和透明度填充路径
func fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color, alpha float32) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	vector.FillPath(dst, path, &vector.FillOptions{}, op)
}

// strokePath 以指定颜色、线宽和透明度描边路径
func strokePath(dst *ebiten.Image, path *vector.Path, clr color.Color, width, alpha float32) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	vector.StrokePath(dst, path, &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound}, op)
}

// roundedRectPath 圆角矩形；半径超过短边一半时截断为胶囊形
func roundedRectPath(x, y, w, h, r float32) *vector.Path {
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}

	var path vector.Path
	path.MoveTo(x+r, y)
	path.LineTo(x+w-r, y)
	path.Arc(x+w-r, y+r, r, -math.Pi/2, 0, vector.Clockwise)
	path.LineTo(x+w, y+h-r)
	path.Arc(x+w-r, y+h-r, r, 0, math.Pi/2, vector.Clockwise)
	path.LineTo(x+r, y+h)
	path.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi, vector.Clockwise)
	path.LineTo(x, y+r)
	path.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2, vector.Clockwise)
	path.Close()
	return &path
}

// heartPath 以 (cx, cy) 为中心、宽度约为 size 的爱心
func heartPath(cx, cy, size float32) *vector.Path {
	s := size / 2
	var path vector.Path
	path.MoveTo(cx, cy+s)
	path.CubicTo(cx-s*1.6, cy-s*0.1, cx-s*0.9, cy-s*1.4, cx, cy-s*0.5)
	path.CubicTo(cx+s*0.9, cy-s*1.4, cx+s*1.6, cy-s*0.1, cx, cy+s)
	path.Close()
	return &path
}

// bowPath 蝴蝶结：两片三角形的翼
func bowPath(cx, cy, size float32) *vector.Path {
	w := size / 2
	h := size / 3
	var path vector.Path
	path.MoveTo(cx, cy)
	path.QuadTo(cx-w*0.5, cy-h*1.4, cx-w, cy-h)
	path.LineTo(cx-w, cy+h)
	path.QuadTo(cx-w*0.5, cy+h*1.4, cx, cy)
	path.QuadTo(cx+w*0.5, cy-h*1.4, cx+w, cy-h)
	path.LineTo(cx+w, cy+h)
	path.QuadTo(cx+w*0.5, cy+h*1.4, cx, cy)
	path.Close()
	return &path
}

// sparklePath 四角星
func sparklePath(cx, cy, radius float32) *vector.Path {
	inner := radius * 0.3
	var path vector.Path
	for i := 0; i < 8; i++ {
		r := radius
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/4 - math.Pi/2
		x := cx + r*float32(math.Cos(a))
		y := cy + r*float32(math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return &path
}

// rotatedSquarePath 以 (cx, cy) 为中心旋转 angle 弧度的正方形
func rotatedSquarePath(cx, cy, size float32, angle float64) *vector.Path {
	half := float64(size) / 2
	sin, cos := math.Sincos(angle)
	var path vector.Path
	corners := [4][2]float64{{-half, -half}, {half, -half}, {half, half}, {-half, half}}
	for i, c := range corners {
		x := cx + float32(c[0]*cos-c[1]*sin)
		y := cy + float32(c[0]*sin+c[1]*cos)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return &path
}

// withAlpha 返回透明度乘以 alpha 之后的颜色
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	// color.RGBA 为预乘格式，所有分量一起缩放
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// DrawIcon 用矢量图形代替表情符号
// 🎀 画蝴蝶结，✨ ⭐ 画闪光，其余（💖 ❤ 等）画爱心
func DrawIcon(screen *ebiten.Image, r rune, cx, cy, size, alpha float64) {
	x, y, s, a := float32(cx), float32(cy), float32(size), float32(alpha)
	switch r {
	case '🎀':
		fillPath(screen, bowPath(x, y, s), config.BowColor, a)
	case '✨', '⭐', '🌟':
		fillPath(screen, sparklePath(x, y, s/2), config.SparkleColor, a)
	default:
		fillPath(screen, heartPath(x, y, s*0.8), config.HeartColor, a)
	}
}

// DrawPlaceholder 图片未就绪时的占位：圆角卡片 + 爱心 + 替代文字
func DrawPlaceholder(screen *ebiten.Image, x, y, w, h float64, label string, font *text.GoTextFace, alpha float64) {
	path := roundedRectPath(float32(x), float32(y), float32(w), float32(h), float32(math.Min(w, h)*0.12))
	fillPath(screen, path, config.PlaceholderColor, float32(alpha))
	strokePath(screen, path, config.ButtonBorderColor, 2, float32(alpha*0.6))

	cx := x + w/2
	iconSize := math.Min(w, h) * 0.35
	iconY := y + h*0.42
	DrawIcon(screen, '💖', cx, iconY, iconSize, alpha)

	if font == nil || label == "" {
		return
	}
	DrawLabel(screen, label, nil, font, cx, iconY+iconSize*0.5+font.Size, 1, config.SubtitleColor, alpha)
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawVerticalGradient 从上到下的线性渐变背景
func DrawVerticalGradient(screen *ebiten.Image, w, h float64, top, bottom color.RGBA) {
	vertex := func(x, y float64, c color.RGBA) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: float32(c.R) / 0xff, ColorG: float32(c.G) / 0xff,
			ColorB: float32(c.B) / 0xff, ColorA: float32(c.A) / 0xff,
		}
	}
	vertices := []ebiten.Vertex{
		vertex(0, 0, top),
		vertex(w, 0, top),
		vertex(0, h, bottom),
		vertex(w, h, bottom),
	}
	indices := []uint16{0, 1, 2, 1, 2, 3}
	screen.DrawTriangles(vertices, indices, whiteSubImage, nil)
}

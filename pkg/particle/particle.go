// Package particle 生成装饰性粒子批次（闪光、彩纸、爱心、蝴蝶结）
//
// 生成是纯函数式的：每次调用独立采样，返回的批次生成后不再修改。
// 批次的清空由 session 包负责。
package particle

import (
	"image/color"
	"math/rand"
)

// 采样范围
const (
	// PositionRange left/top 百分比上限（不含）
	PositionRange = 100.0
	// MaxDelay 彩纸、爱心、蝴蝶结的动画延迟上限（秒，不含）
	MaxDelay = 2.0
	// MaxStagger 闪光渲染时的随机错峰上限（秒，不含）
	MaxStagger = 1.5
)

// Particle 单个装饰粒子
//
// Left/Top 为视口百分比 [0,100)；Top 只对闪光有意义。
// Delay 为动画起始延迟（秒）；Color 只对彩纸有意义。
type Particle struct {
	ID    int
	Left  float64
	Top   float64
	Delay float64
	Color color.RGBA
}

// DefaultPalette 彩纸默认的 6 种粉色
var DefaultPalette = []color.RGBA{
	{R: 0xff, G: 0x6b, B: 0x9d, A: 0xff},
	{R: 0xff, G: 0xb3, B: 0xd9, A: 0xff},
	{R: 0xff, G: 0xc0, B: 0xe5, A: 0xff},
	{R: 0xff, G: 0xd6, B: 0xe8, A: 0xff},
	{R: 0xff, G: 0xe5, B: 0xf1, A: 0xff},
	{R: 0xff, G: 0x69, B: 0xb4, A: 0xff},
}

// Generator 粒子生成器
type Generator struct {
	rng     *rand.Rand
	palette []color.RGBA
}

// NewGenerator 创建生成器
// palette 为空时使用 DefaultPalette
func NewGenerator(rng *rand.Rand, palette []color.RGBA) *Generator {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Generator{
		rng:     rng,
		palette: append([]color.RGBA(nil), palette...),
	}
}

// Palette 返回彩纸调色板的副本
func (g *Generator) Palette() []color.RGBA {
	return append([]color.RGBA(nil), g.palette...)
}

// Generate 生成 count 个指定种类的粒子，ID 为 0..count-1
// count <= 0 时返回空批次
func (g *Generator) Generate(kind Kind, count int) []Particle {
	if count <= 0 {
		return []Particle{}
	}

	batch := make([]Particle, count)
	for i := range batch {
		p := Particle{ID: i}
		switch kind {
		case KindSparkle:
			p.Left = g.rng.Float64() * PositionRange
			p.Top = g.rng.Float64() * PositionRange
		case KindConfetti:
			p.Left = g.rng.Float64() * PositionRange
			p.Delay = g.rng.Float64() * MaxDelay
			p.Color = g.palette[g.rng.Intn(len(g.palette))]
		case KindHeart, KindBow:
			p.Left = g.rng.Float64() * PositionRange
			p.Delay = g.rng.Float64() * MaxDelay
		}
		batch[i] = p
	}
	return batch
}

// GenerateAll 按 specs 逐个生成，同一种类重复出现时后者覆盖前者
func (g *Generator) GenerateAll(specs []Spec) map[Kind][]Particle {
	batches := make(map[Kind][]Particle, len(specs))
	for _, spec := range specs {
		batches[spec.Kind] = g.Generate(spec.Kind, spec.Count)
	}
	return batches
}

// Stagger 渲染时闪光的随机错峰（不存储，每次构建渲染数据时重新采样）
func Stagger(rng *rand.Rand) float64 {
	return rng.Float64() * MaxStagger
}

// RoundShape 彩纸渲染时的形状抛硬币：true 为圆形，false 为方形
func RoundShape(rng *rand.Rand) bool {
	return rng.Float64() > 0.5
}

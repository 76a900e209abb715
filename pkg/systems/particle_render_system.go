package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/particle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ParticleSource 粒子批次的来源（会话或固定装饰）
type ParticleSource interface {
	Particles(kind particle.Kind) []particle.Particle
	Generation() int
}

// FixedBatches 一组不会被替换的批次，用于问题场景的装饰闪光
type FixedBatches map[particle.Kind][]particle.Particle

// Particles 返回指定种类的批次
func (b FixedBatches) Particles(kind particle.Kind) []particle.Particle {
	return b[kind]
}

// Generation 固定批次永远是第一代
func (b FixedBatches) Generation() int {
	return 1
}

// particleSprite 一个粒子的渲染状态
// stagger 与 round 在批次出现时采样一次，不回写到粒子数据
type particleSprite struct {
	kind    particle.Kind
	p       particle.Particle
	stagger float64
	round   bool
	sway    float64
}

// spriteFrame 某一时刻粒子的绘制参数
type spriteFrame struct {
	x, y    float64
	scale   float64
	alpha   float64
	angle   float64
	visible bool
}

// ParticleRenderSystem 粒子渲染系统
// 把粒子批次变成循环动画：
//   - sparkle：原地闪烁（缩放 + 透明度），起始时间错开
//   - confetti：从顶部落到底部并旋转，圆形或方形
//   - heart/bow：从底部飘到顶部，左右轻微摆动
//
// 批次被整体替换（Generation 变化）时重建精灵并重置动画时间
type ParticleRenderSystem struct {
	source     ParticleSource
	rng        *rand.Rand
	generation int
	elapsed    float64
	sprites    []particleSprite
}

// NewParticleRenderSystem 创建粒子渲染系统
func NewParticleRenderSystem(source ParticleSource, rng *rand.Rand) *ParticleRenderSystem {
	return &ParticleRenderSystem{
		source:     source,
		rng:        rng,
		generation: -1,
	}
}

// Update 检查批次是否被替换并推进动画时间
func (s *ParticleRenderSystem) Update(deltaTime float64) {
	if gen := s.source.Generation(); gen != s.generation {
		s.generation = gen
		s.rebuild()
	}
	s.elapsed += deltaTime
}

func (s *ParticleRenderSystem) rebuild() {
	s.sprites = s.sprites[:0]
	s.elapsed = 0
	for _, kind := range particle.Kinds {
		for _, p := range s.source.Particles(kind) {
			sp := particleSprite{kind: kind, p: p, sway: s.rng.Float64() * 2 * math.Pi}
			switch kind {
			case particle.KindSparkle:
				sp.stagger = particle.Stagger(s.rng)
			case particle.KindConfetti:
				sp.round = particle.RoundShape(s.rng)
			}
			s.sprites = append(s.sprites, sp)
		}
	}
}

// Count 当前精灵数量
func (s *ParticleRenderSystem) Count() int {
	return len(s.sprites)
}

// Draw 在 width x height 的区域内绘制所有粒子
func (s *ParticleRenderSystem) Draw(screen *ebiten.Image, width, height float64) {
	for i := range s.sprites {
		sp := &s.sprites[i]
		f := frameAt(sp, s.elapsed, width, height)
		if !f.visible || f.alpha <= 0 || f.scale <= 0 {
			continue
		}
		drawSprite(screen, sp, f)
	}
}

// frameAt 计算粒子在 elapsed 时刻的位置与外观
func frameAt(sp *particleSprite, elapsed, width, height float64) spriteFrame {
	x := sp.p.Left / particle.PositionRange * width

	switch sp.kind {
	case particle.KindSparkle:
		t := elapsed - sp.stagger
		if t < 0 {
			return spriteFrame{}
		}
		phase := math.Mod(t, config.SparkleTwinklePeriod) / config.SparkleTwinklePeriod
		v := math.Sin(phase * math.Pi)
		return spriteFrame{
			x:       x,
			y:       sp.p.Top / particle.PositionRange * height,
			scale:   v,
			alpha:   v,
			angle:   phase * math.Pi,
			visible: true,
		}

	case particle.KindConfetti:
		t := elapsed - sp.p.Delay
		if t < 0 {
			return spriteFrame{}
		}
		phase := math.Mod(t, config.ConfettiFallDuration) / config.ConfettiFallDuration
		travel := height + 2*config.ConfettiSize
		return spriteFrame{
			x:       x + math.Sin(sp.sway+phase*2*math.Pi)*config.ConfettiSize,
			y:       -config.ConfettiSize + phase*travel,
			scale:   1,
			alpha:   1,
			angle:   phase * 4 * math.Pi,
			visible: true,
		}

	default: // heart, bow
		t := elapsed - sp.p.Delay
		if t < 0 {
			return spriteFrame{}
		}
		size := config.HeartSize
		if sp.kind == particle.KindBow {
			size = config.BowSize
		}
		phase := math.Mod(t, config.FloatRiseDuration) / config.FloatRiseDuration
		travel := height + 2*size
		alpha := 1.0
		if phase > 0.8 {
			alpha = (1 - phase) / 0.2
		}
		return spriteFrame{
			x:       x + math.Sin(sp.sway+phase*4*math.Pi)*size*0.5,
			y:       height + size - phase*travel,
			scale:   1,
			alpha:   alpha,
			angle:   math.Sin(sp.sway+phase*2*math.Pi) * 0.2,
			visible: true,
		}
	}
}

func drawSprite(screen *ebiten.Image, sp *particleSprite, f spriteFrame) {
	x, y := float32(f.x), float32(f.y)
	alpha := float32(f.alpha)

	switch sp.kind {
	case particle.KindSparkle:
		fillPath(screen, sparklePath(x, y, float32(config.SparkleSize*f.scale)), config.SparkleColor, alpha)
	case particle.KindConfetti:
		if sp.round {
			vector.DrawFilledCircle(screen, x, y, float32(config.ConfettiSize/2), withAlpha(sp.p.Color, f.alpha), true)
			return
		}
		fillPath(screen, rotatedSquarePath(x, y, float32(config.ConfettiSize), f.angle), sp.p.Color, alpha)
	case particle.KindHeart:
		fillPath(screen, heartPath(x, y, float32(config.HeartSize*f.scale)), config.HeartColor, alpha)
	case particle.KindBow:
		fillPath(screen, bowPath(x, y, float32(config.BowSize*f.scale)), config.BowColor, alpha)
	}
}

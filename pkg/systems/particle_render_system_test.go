package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/particle"
	"github.com/decker502/valentine/pkg/session"
	"github.com/decker502/valentine/pkg/timer"
)

func TestParticleRenderFollowsSessionBatches(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	clock := timer.NewScheduler()
	sess := session.New(session.Config{
		Particles: []particle.Spec{
			{Kind: particle.KindSparkle, Count: 30},
			{Kind: particle.KindConfetti, Count: 50},
		},
		ClearAfter: 10 * time.Second,
	}, particle.NewGenerator(rng, nil), clock)

	rs := NewParticleRenderSystem(sess, rng)
	rs.Update(1.0 / 60)
	if rs.Count() != 0 {
		t.Fatalf("before accept Count() = %d, expected 0", rs.Count())
	}

	sess.Accept()
	rs.Update(1.0 / 60)
	if rs.Count() != 80 {
		t.Errorf("after accept Count() = %d, expected 80", rs.Count())
	}

	clock.Advance(10 * time.Second)
	rs.Update(1.0 / 60)
	if rs.Count() != 0 {
		t.Errorf("after clear Count() = %d, expected 0", rs.Count())
	}
}

func TestParticleRenderFixedBatches(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	gen := particle.NewGenerator(rng, nil)
	batches := FixedBatches{particle.KindSparkle: gen.Generate(particle.KindSparkle, 12)}

	rs := NewParticleRenderSystem(batches, rng)
	rs.Update(0.5)
	rs.Update(0.5)
	if rs.Count() != 12 {
		t.Errorf("Count() = %d, expected 12", rs.Count())
	}
	if rs.elapsed != 1.0 {
		t.Errorf("fixed batches should not reset the animation clock, elapsed = %v", rs.elapsed)
	}
}

func TestSparkleStaggerSampledOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	batches := FixedBatches{particle.KindSparkle: particle.NewGenerator(rng, nil).Generate(particle.KindSparkle, 20)}
	rs := NewParticleRenderSystem(batches, rng)
	rs.Update(0)

	first := make([]float64, len(rs.sprites))
	for i, sp := range rs.sprites {
		if sp.stagger < 0 || sp.stagger >= particle.MaxStagger {
			t.Errorf("stagger %v out of range [0, %v)", sp.stagger, particle.MaxStagger)
		}
		first[i] = sp.stagger
	}
	rs.Update(1)
	for i, sp := range rs.sprites {
		if sp.stagger != first[i] {
			t.Fatalf("sprite %d stagger changed between frames", i)
		}
	}
}

func TestFrameAt(t *testing.T) {
	const w, h = 400.0, 800.0

	t.Run("闪光在错开时间之前不可见", func(t *testing.T) {
		sp := &particleSprite{kind: particle.KindSparkle, p: particle.Particle{Left: 50, Top: 25}, stagger: 1}
		if f := frameAt(sp, 0.5, w, h); f.visible {
			t.Error("sparkle visible before its stagger")
		}
		f := frameAt(sp, 1+config.SparkleTwinklePeriod/2, w, h)
		if !f.visible || f.x != 200 || f.y != 200 {
			t.Errorf("sparkle frame = %+v, expected visible at (200, 200)", f)
		}
		if f.scale < 0.99 {
			t.Errorf("sparkle at half period scale = %v, expected ~1", f.scale)
		}
	})

	t.Run("彩纸从顶部落下", func(t *testing.T) {
		sp := &particleSprite{kind: particle.KindConfetti, p: particle.Particle{Left: 10, Delay: 0.5}}
		if f := frameAt(sp, 0.2, w, h); f.visible {
			t.Error("confetti visible before its delay")
		}
		early := frameAt(sp, 0.6, w, h)
		late := frameAt(sp, 0.5+config.ConfettiFallDuration*0.9, w, h)
		if !(early.y < late.y) {
			t.Errorf("confetti should fall: early y=%v, late y=%v", early.y, late.y)
		}
		if early.y < -config.ConfettiSize || late.y > h+config.ConfettiSize {
			t.Errorf("confetti out of travel range: %v, %v", early.y, late.y)
		}
	})

	t.Run("爱心向上飘", func(t *testing.T) {
		sp := &particleSprite{kind: particle.KindHeart, p: particle.Particle{Left: 90}}
		early := frameAt(sp, 0.1, w, h)
		late := frameAt(sp, config.FloatRiseDuration*0.7, w, h)
		if !(late.y < early.y) {
			t.Errorf("heart should rise: early y=%v, late y=%v", early.y, late.y)
		}
		fading := frameAt(sp, config.FloatRiseDuration*0.95, w, h)
		if fading.alpha >= 1 || fading.alpha <= 0 {
			t.Errorf("heart near the top alpha = %v, expected fading", fading.alpha)
		}
	})
}

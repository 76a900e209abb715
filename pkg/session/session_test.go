package session

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/decker502/valentine/pkg/evasion"
	"github.com/decker502/valentine/pkg/particle"
	"github.com/decker502/valentine/pkg/timer"
)

var celebrationSpecs = []particle.Spec{
	{Kind: particle.KindSparkle, Count: 30},
	{Kind: particle.KindConfetti, Count: 50},
}

func newTestSession(specs []particle.Spec) (*Session, *timer.Scheduler) {
	sched := timer.NewScheduler()
	gen := particle.NewGenerator(rand.New(rand.NewSource(1)), nil)
	return New(Config{Particles: specs, ClearAfter: 10 * time.Second}, gen, sched), sched
}

func TestInitialState(t *testing.T) {
	s, _ := newTestSession(celebrationSpecs)

	if s.State() != StateAsking {
		t.Errorf("State() = %v, expected Asking", s.State())
	}
	if s.HasParticles() {
		t.Errorf("new session should have no particles")
	}
	if _, ok := s.ButtonPosition(); ok {
		t.Errorf("button should not be moved yet")
	}
}

func TestAcceptGeneratesBatches(t *testing.T) {
	s, sched := newTestSession(celebrationSpecs)

	if !s.Accept() {
		t.Fatalf("Accept() = false, expected true")
	}
	if s.State() != StateAccepted {
		t.Errorf("State() = %v, expected Accepted", s.State())
	}
	if got := len(s.Particles(particle.KindSparkle)); got != 30 {
		t.Errorf("sparkles = %d, expected 30", got)
	}
	if got := len(s.Particles(particle.KindConfetti)); got != 50 {
		t.Errorf("confetti = %d, expected 50", got)
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1 clear timer", sched.Pending())
	}
}

func TestAcceptIsIdempotent(t *testing.T) {
	s, sched := newTestSession(celebrationSpecs)
	calls := 0
	s.OnAccepted(func() { calls++ })

	s.Accept()
	first := append([]particle.Particle(nil), s.Particles(particle.KindSparkle)...)
	gen := s.Generation()

	if s.Accept() {
		t.Errorf("second Accept() = true, expected false")
	}
	if s.State() != StateAccepted {
		t.Errorf("State() = %v, expected Accepted", s.State())
	}
	if s.Generation() != gen {
		t.Errorf("Generation changed from %d to %d on second Accept", gen, s.Generation())
	}
	if !reflect.DeepEqual(first, s.Particles(particle.KindSparkle)) {
		t.Errorf("sparkle batch regenerated on second Accept")
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d, expected a single clear timer", sched.Pending())
	}
	if calls != 1 {
		t.Errorf("OnAccepted called %d times, expected 1", calls)
	}
}

func TestParticlesClearedAfterTimer(t *testing.T) {
	s, sched := newTestSession(celebrationSpecs)
	s.Accept()

	sparkles := append([]particle.Particle(nil), s.Particles(particle.KindSparkle)...)
	confetti := append([]particle.Particle(nil), s.Particles(particle.KindConfetti)...)

	sched.Advance(9*time.Second + 999*time.Millisecond)
	if !reflect.DeepEqual(sparkles, s.Particles(particle.KindSparkle)) ||
		!reflect.DeepEqual(confetti, s.Particles(particle.KindConfetti)) {
		t.Fatalf("batches changed before the clear timer fired")
	}

	sched.Advance(time.Millisecond)
	if s.HasParticles() {
		t.Errorf("particles still present after 10s")
	}
	for _, kind := range []particle.Kind{particle.KindSparkle, particle.KindConfetti} {
		batch := s.Particles(kind)
		if batch == nil || len(batch) != 0 {
			t.Errorf("%v batch = %v, expected empty collection", kind, batch)
		}
	}
	if s.State() != StateAccepted {
		t.Errorf("State() = %v after clear, expected Accepted", s.State())
	}
}

func TestCloseCancelsTimer(t *testing.T) {
	s, sched := newTestSession(celebrationSpecs)
	s.Accept()
	gen := s.Generation()

	s.Close()
	s.Close()
	sched.Advance(time.Minute)

	if s.Generation() != gen {
		t.Errorf("session mutated after Close (generation %d -> %d)", gen, s.Generation())
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d after Close, expected 0", sched.Pending())
	}
	if !s.Closed() {
		t.Errorf("Closed() = false")
	}
}

func TestAcceptAfterClose(t *testing.T) {
	s, _ := newTestSession(celebrationSpecs)
	s.Close()

	if s.Accept() {
		t.Errorf("Accept() after Close = true, expected false")
	}
	if s.State() != StateAsking {
		t.Errorf("State() = %v, expected Asking", s.State())
	}
}

func TestAllKindsEnabled(t *testing.T) {
	s, _ := newTestSession([]particle.Spec{
		{Kind: particle.KindHeart, Count: 20},
		{Kind: particle.KindSparkle, Count: 30},
		{Kind: particle.KindConfetti, Count: 50},
		{Kind: particle.KindBow, Count: 15},
	})
	s.Accept()

	expected := map[particle.Kind]int{
		particle.KindHeart:    20,
		particle.KindSparkle:  30,
		particle.KindConfetti: 50,
		particle.KindBow:      15,
	}
	for kind, n := range expected {
		if got := len(s.Particles(kind)); got != n {
			t.Errorf("%v = %d, expected %d", kind, got, n)
		}
	}
}

func TestDefaultClearAfter(t *testing.T) {
	sched := timer.NewScheduler()
	gen := particle.NewGenerator(rand.New(rand.NewSource(1)), nil)
	s := New(Config{Particles: celebrationSpecs}, gen, sched)
	s.Accept()

	sched.Advance(DefaultClearAfter - time.Nanosecond)
	if !s.HasParticles() {
		t.Fatalf("particles cleared too early")
	}
	sched.Advance(time.Nanosecond)
	if s.HasParticles() {
		t.Errorf("particles not cleared at DefaultClearAfter")
	}
}

func TestButtonPosition(t *testing.T) {
	s, _ := newTestSession(nil)
	pos := evasion.ButtonPosition{X: 20, Y: 30, Width: 160, Height: 52}
	s.SetButtonPosition(pos)

	got, ok := s.ButtonPosition()
	if !ok || got != pos {
		t.Errorf("ButtonPosition() = %+v, %v; expected %+v, true", got, ok, pos)
	}
}

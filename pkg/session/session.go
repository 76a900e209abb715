// Package session 记录贺卡是否已被接受，并管理庆祝粒子的生命周期
package session

import (
	"log"
	"time"

	"github.com/decker502/valentine/pkg/evasion"
	"github.com/decker502/valentine/pkg/particle"
	"github.com/decker502/valentine/pkg/timer"
)

// State 会话状态
type State int

const (
	// StateAsking 初始状态：正在提问
	StateAsking State = iota
	// StateAccepted 终止状态：已点击"是"
	StateAccepted
)

func (s State) String() string {
	switch s {
	case StateAsking:
		return "Asking"
	case StateAccepted:
		return "Accepted"
	default:
		return "Unknown"
	}
}

// DefaultClearAfter 庆祝粒子的展示时长
const DefaultClearAfter = 10 * time.Second

// Scheduler 一次性定时器能力
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) *timer.Timer
}

// Config 会话配置
type Config struct {
	// Particles 接受时生成的粒子种类与数量
	Particles []particle.Spec
	// ClearAfter 粒子展示时长，<= 0 时使用 DefaultClearAfter
	ClearAfter time.Duration
}

// Session 单次会话的全部可变状态
type Session struct {
	cfg       Config
	generator *particle.Generator
	scheduler Scheduler

	state      State
	particles  map[particle.Kind][]particle.Particle
	generation int
	clearTimer *timer.Timer
	closed     bool

	buttonPosition evasion.ButtonPosition
	buttonMoved    bool

	onAccepted []func()
}

// New 创建处于 StateAsking 的会话
func New(cfg Config, generator *particle.Generator, scheduler Scheduler) *Session {
	if cfg.ClearAfter <= 0 {
		cfg.ClearAfter = DefaultClearAfter
	}
	return &Session{
		cfg:       cfg,
		generator: generator,
		scheduler: scheduler,
		state:     StateAsking,
		particles: make(map[particle.Kind][]particle.Particle),
	}
}

// State 当前状态
func (s *Session) State() State {
	return s.state
}

// OnAccepted 注册进入 StateAccepted 时的回调（粒子已生成之后调用）
func (s *Session) OnAccepted(fn func()) {
	s.onAccepted = append(s.onAccepted, fn)
}

// Accept 点击"是"
//
// 只有第一次调用生效：生成所有配置的粒子批次并启动清理定时器。
// 之后的调用（以及 Close 之后的调用）什么也不做，返回 false。
func (s *Session) Accept() bool {
	if s.closed || s.state == StateAccepted {
		return false
	}

	s.state = StateAccepted
	s.particles = s.generator.GenerateAll(s.cfg.Particles)
	s.generation++
	s.clearTimer = s.scheduler.AfterFunc(s.cfg.ClearAfter, s.clearParticles)

	log.Printf("[Session] Accepted: generated %d particle batches, clearing in %v",
		len(s.particles), s.cfg.ClearAfter)

	for _, fn := range s.onAccepted {
		fn()
	}
	return true
}

// clearParticles 定时器到期：整体替换为空批次，状态保持 Accepted
func (s *Session) clearParticles() {
	if s.closed {
		return
	}
	cleared := make(map[particle.Kind][]particle.Particle, len(s.particles))
	for kind := range s.particles {
		cleared[kind] = []particle.Particle{}
	}
	s.particles = cleared
	s.generation++
	s.clearTimer = nil
	log.Printf("[Session] Celebration particles cleared")
}

// Particles 指定种类的当前批次（只读，调用方不得修改）
func (s *Session) Particles(kind particle.Kind) []particle.Particle {
	return s.particles[kind]
}

// HasParticles 是否还有任何粒子在展示
func (s *Session) HasParticles() bool {
	for _, batch := range s.particles {
		if len(batch) > 0 {
			return true
		}
	}
	return false
}

// Generation 每次批次整体替换时递增，渲染层据此判断是否需要重建
func (s *Session) Generation() int {
	return s.generation
}

// SetButtonPosition 记录逃跑按钮的最新位置
func (s *Session) SetButtonPosition(pos evasion.ButtonPosition) {
	s.buttonPosition = pos
	s.buttonMoved = true
}

// ButtonPosition 逃跑按钮位置；从未移动过时 ok 为 false
func (s *Session) ButtonPosition() (pos evasion.ButtonPosition, ok bool) {
	return s.buttonPosition, s.buttonMoved
}

// Close 结束会话：取消尚未到期的清理定时器
// 可重复调用
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.clearTimer.Stop() {
		log.Printf("[Session] Closed before clear timer fired, timer cancelled")
	}
	s.clearTimer = nil
}

// Closed 是否已结束
func (s *Session) Closed() bool {
	return s.closed
}

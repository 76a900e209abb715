// Package timer 提供由游戏循环驱动的一次性定时器
//
// 与 time.AfterFunc 不同，回调在 Scheduler.Advance 所在的 goroutine（即 Update）
// 中同步执行，因此不需要任何锁，测试时也可以直接推进模拟时钟。
package timer

import "time"

// Timer 一次性定时器句柄
type Timer struct {
	deadline time.Duration
	fn       func()
	stopped  bool
	fired    bool
}

// Stop 取消定时器；返回 true 表示本次调用阻止了回调执行
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Active 定时器是否仍在等待
func (t *Timer) Active() bool {
	return t != nil && !t.stopped && !t.fired
}

// Scheduler 模拟时钟与待触发定时器集合
type Scheduler struct {
	now    time.Duration
	timers []*Timer
}

// NewScheduler 创建调度器，时钟从 0 开始
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now 当前模拟时间
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// AfterFunc 在 d 之后执行 fn
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	t := &Timer{deadline: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance 推进时钟并按到期时间顺序执行所有到期回调
//
// 回调中新建的定时器若已到期，会在同一次 Advance 中执行。
func (s *Scheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}

	for {
		next := s.nextDue()
		if next == nil {
			break
		}
		next.fired = true
		next.fn()
	}
	s.compact()
}

// AdvanceSeconds 以秒为单位推进（游戏循环的 deltaTime 是 float64 秒）
func (s *Scheduler) AdvanceSeconds(deltaTime float64) {
	s.Advance(time.Duration(deltaTime * float64(time.Second)))
}

// Pending 等待中的定时器数量
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.Active() {
			n++
		}
	}
	return n
}

// StopAll 取消所有等待中的定时器
func (s *Scheduler) StopAll() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

func (s *Scheduler) nextDue() *Timer {
	var next *Timer
	for _, t := range s.timers {
		if !t.Active() || t.deadline > s.now {
			continue
		}
		if next == nil || t.deadline < next.deadline {
			next = t
		}
	}
	return next
}

func (s *Scheduler) compact() {
	alive := s.timers[:0]
	for _, t := range s.timers {
		if t.Active() {
			alive = append(alive, t)
		}
	}
	for i := len(alive); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = alive
}

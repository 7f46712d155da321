// Package timers provides explicit one-shot and interval timers driven by a
// caller-supplied clock, so game logic can run without a rendering surface.
package timers

import "time"

// Handle refers to a scheduled callback. A nil Handle is inert.
type Handle struct {
	id       uint64
	due      time.Duration
	interval time.Duration // 0 for one-shot timers
	fn       func()
	done     bool
}

// Cancel stops the callback from firing again. Safe to call more than once.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.done = true
}

// Active reports whether the callback can still fire.
func (h *Handle) Active() bool {
	return h != nil && !h.done
}

// Due returns the scheduler time at which the callback fires next.
func (h *Handle) Due() time.Duration {
	if h == nil {
		return 0
	}
	return h.due
}

// Scheduler owns a set of timers and a monotonic clock that only moves
// when Advance is called.
type Scheduler struct {
	now     time.Duration
	nextID  uint64
	handles []*Handle
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, delay from now.
func (s *Scheduler) After(delay time.Duration, fn func()) *Handle {
	if delay < 0 {
		delay = 0
	}
	return s.add(&Handle{due: s.now + delay, fn: fn})
}

// Every schedules fn to run every interval, first firing one interval from now.
// A non-positive interval yields an inactive handle.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Handle {
	if interval <= 0 {
		return &Handle{done: true}
	}
	return s.add(&Handle{due: s.now + interval, interval: interval, fn: fn})
}

func (s *Scheduler) add(h *Handle) *Handle {
	s.nextID++
	h.id = s.nextID
	s.handles = append(s.handles, h)
	return h
}

// Next returns the due time of the earliest active timer.
func (s *Scheduler) Next() (time.Duration, bool) {
	h := s.earliest()
	if h == nil {
		return 0, false
	}
	return h.due, true
}

// Advance moves the clock forward by dt, firing every callback that becomes due
// in due-time order. Callbacks observe Now() equal to their own due time.
// Timers created or cancelled by a callback take effect within the same Advance.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt

	for {
		h := s.earliest()
		if h == nil || h.due > target {
			break
		}

		s.now = h.due
		if h.interval > 0 {
			h.due += h.interval
		} else {
			h.done = true
		}
		h.fn()
	}

	s.now = target
	s.prune()
}

// Stop cancels every timer.
func (s *Scheduler) Stop() {
	for _, h := range s.handles {
		h.done = true
	}
	s.handles = nil
}

// Len returns the number of active timers.
func (s *Scheduler) Len() int {
	n := 0
	for _, h := range s.handles {
		if !h.done {
			n++
		}
	}
	return n
}

// earliest returns the active handle with the smallest due time; ties go to
// the handle scheduled first.
func (s *Scheduler) earliest() *Handle {
	var best *Handle
	for _, h := range s.handles {
		if h.done {
			continue
		}
		if best == nil || h.due < best.due || (h.due == best.due && h.id < best.id) {
			best = h
		}
	}
	return best
}

func (s *Scheduler) prune() {
	live := s.handles[:0]
	for _, h := range s.handles {
		if !h.done {
			live = append(live, h)
		}
	}
	for i := len(live); i < len(s.handles); i++ {
		s.handles[i] = nil
	}
	s.handles = live
}

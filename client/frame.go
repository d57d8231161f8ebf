package client

import (
	"sync"
	"time"
)

// Scheduler runs callbacks at the host's animation frame cadence.
// RequestFrame schedules fn for the next frame and returns a function that
// cancels it if it has not run yet.
type Scheduler interface {
	RequestFrame(fn func(now time.Time)) (cancel func())
}

// FrameThrottle collapses bursts of events into at most one call per frame.
type FrameThrottle struct {
	sched Scheduler

	mu      sync.Mutex
	pending bool
	fn      func(now time.Time)
	cancel  func()
}

// NewFrameThrottle returns a throttle that schedules on sched.
func NewFrameThrottle(sched Scheduler) *FrameThrottle {
	return &FrameThrottle{sched: sched}
}

// Schedule arranges for fn to run on the next frame. Calls made while a frame
// is pending replace the callback and do not schedule another frame.
func (f *FrameThrottle) Schedule(fn func(now time.Time)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fn = fn
	if f.pending {
		return
	}
	f.pending = true
	f.cancel = f.sched.RequestFrame(f.run)
}

// Stop cancels a pending frame.
func (f *FrameThrottle) Stop() {
	f.mu.Lock()
	cancel := f.cancel
	f.pending = false
	f.fn = nil
	f.cancel = nil
	f.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (f *FrameThrottle) run(now time.Time) {
	f.mu.Lock()
	fn := f.fn
	f.pending = false
	f.fn = nil
	f.cancel = nil
	f.mu.Unlock()
	if fn != nil {
		fn(now)
	}
}

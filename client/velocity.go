package client

import (
	"math"
	"sync"
	"time"
)

const (
	// DefaultBaseDuration is the animation duration at a neutral scroll speed.
	DefaultBaseDuration = 500 * time.Millisecond

	smoothing = 0.2
	minFactor = 0.3
	maxFactor = 1.5
)

// Smoother tracks an exponentially smoothed scroll speed in pixels per
// millisecond.
type Smoother struct {
	mu       sync.Mutex
	velocity float64
	lastY    float64
	lastAt   time.Time
}

// NewSmoother returns a smoother whose first sample is measured from scroll
// offset 0 at mountedAt.
func NewSmoother(mountedAt time.Time) *Smoother {
	return &Smoother{lastAt: mountedAt}
}

// Sample feeds the scroll offset y observed at time at and returns the new
// smoothed velocity.
func (s *Smoother) Sample(y float64, at time.Time) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var inst float64
	if dt := float64(at.Sub(s.lastAt)) / float64(time.Millisecond); dt > 0 {
		inst = math.Abs(y-s.lastY) / dt
	}
	s.velocity = s.velocity*(1-smoothing) + inst*smoothing
	s.lastY = y
	s.lastAt = at
	return s.velocity
}

// Velocity returns the current smoothed velocity.
func (s *Smoother) Velocity() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.velocity
}

// Factor maps the velocity onto [0.3, 1.5].
func (s *Smoother) Factor() float64 {
	return velocityFactor(s.Velocity())
}

// Duration scales base by the current velocity: fast scrolling shortens
// animations, slow scrolling lengthens them.
func (s *Smoother) Duration(base time.Duration) time.Duration {
	return time.Duration(float64(base) / s.Factor())
}

func velocityFactor(v float64) float64 {
	f := v * 100
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 1
	}
	return math.Min(math.Max(f, minFactor), maxFactor)
}

// Run samples readY on every animation frame until the returned stop
// function is called.
func (s *Smoother) Run(sched Scheduler, readY func() float64) (stop func()) {
	var (
		mu      sync.Mutex
		stopped bool
		cancel  func()
		tick    func(now time.Time)
	)
	tick = func(now time.Time) {
		s.Sample(readY(), now)
		mu.Lock()
		defer mu.Unlock()
		if !stopped {
			cancel = sched.RequestFrame(tick)
		}
	}

	mu.Lock()
	cancel = sched.RequestFrame(tick)
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		stopped = true
		if cancel != nil {
			cancel()
		}
	}
}

package client

import (
	"sync"
	"sync/atomic"
)

// DefaultVisibilityThreshold is the fraction of a section that must be on
// screen before its entrance animation starts.
const DefaultVisibilityThreshold = 0.1

// ratioEpsilon absorbs float error only; a ratio measurably below the
// threshold does not count as a crossing.
const ratioEpsilon = 1e-9

// Entry is one visibility report for an observed region.
type Entry struct {
	Intersecting bool
	Ratio        float64
}

// Observer watches a single screen region. Observe registers fn to be called
// whenever the visible fraction of the region crosses threshold and returns a
// function that unregisters it.
type Observer interface {
	Observe(threshold float64, fn func(Entry)) (release func())
}

// Trigger is a one-way visibility flag.
type Trigger struct {
	threshold float64
	visible   atomic.Bool

	mu      sync.Mutex
	release func()

	// OnVisible, if set, is called once when the flag flips.
	OnVisible func()
}

// NewTrigger returns a trigger that fires once the observed region is at least
// threshold visible. Out of range thresholds fall back to the default.
func NewTrigger(threshold float64) *Trigger {
	if threshold < 0 || threshold > 1 {
		threshold = DefaultVisibilityThreshold
	}
	return &Trigger{threshold: threshold}
}

// Threshold returns the visible fraction the trigger waits for.
func (t *Trigger) Threshold() float64 { return t.threshold }

// Visible reports whether the region has been seen. Once true it stays true.
func (t *Trigger) Visible() bool { return t.visible.Load() }

// Mount starts observing. Mounting an already visible or mounted trigger is a
// no-op.
func (t *Trigger) Mount(obs Observer) {
	if t.Visible() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.release != nil {
		return
	}
	t.release = obs.Observe(t.threshold, t.handle)
}

// Unmount releases the observer. It is safe to call more than once and before
// Mount.
func (t *Trigger) Unmount() {
	t.mu.Lock()
	release := t.release
	t.release = nil
	t.mu.Unlock()
	if release != nil {
		release()
	}
}

func (t *Trigger) handle(e Entry) {
	if t.Visible() || !e.Intersecting || e.Ratio+ratioEpsilon < t.threshold {
		return
	}
	if t.visible.CompareAndSwap(false, true) {
		if t.OnVisible != nil {
			t.OnVisible()
		}
		// Nothing left to observe.
		go t.Unmount()
	}
}

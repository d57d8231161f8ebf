package client

import "sync"

// Teardown collects release functions for everything mounted on a page.
type Teardown struct {
	mu  sync.Mutex
	fns []func()
}

// Add registers fns to run on teardown.
func (t *Teardown) Add(fns ...func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fns = append(t.fns, fns...)
}

// PageHide handles the page being hidden. A page entering the back/forward
// cache is restored as is, so nothing is released when persisted is true.
// It reports whether the release functions ran.
func (t *Teardown) PageHide(persisted bool) bool {
	if persisted {
		return false
	}
	t.mu.Lock()
	fns := t.fns
	t.fns = nil
	t.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return true
}

package client

import "math"

const (
	// DefaultLookahead is how far below the top of the viewport a section may
	// start and still count as the current one.
	DefaultLookahead = 100

	// DefaultNavHeight is the height of the fixed navigation bar. Scrolling to
	// a section stops this far above it.
	DefaultNavHeight = 80

	// DefaultScrolledThreshold is the scroll offset past which the navigation
	// bar switches to its opaque backdrop.
	DefaultScrolledThreshold = 20
)

// Section is a content region of the page and the vertical offset of its top
// edge.
type Section struct {
	ID  string  `json:"id"`
	Top float64 `json:"top"`
}

// Tracker resolves which section the reader is currently in.
type Tracker struct {
	Lookahead float64
}

// Active returns the ID of the lowest section whose top edge has been passed
// by scrollY plus the lookahead. Sections are in page order. If no section has
// been reached the first one is returned, and an empty list yields "".
func (t Tracker) Active(sections []Section, scrollY float64) string {
	if len(sections) == 0 {
		return ""
	}
	pos := scrollY + t.Lookahead
	for i := len(sections) - 1; i >= 0; i-- {
		if sections[i].Top <= pos {
			return sections[i].ID
		}
	}
	return sections[0].ID
}

// ScrollTarget is the scroll offset that brings a section starting at top
// just below a fixed bar of navHeight.
func ScrollTarget(top, navHeight float64) float64 {
	return math.Max(top-navHeight, 0)
}

// NavState is what the navigation bar renders.
type NavState struct {
	Active   string
	Scrolled bool
}

// Nav owns the navigation bar state of one page view.
type Nav struct {
	Tracker           Tracker
	ScrolledThreshold float64

	state NavState
}

// NewNav returns a navigation state holder with the given lookahead. Until
// the first update the first section is active.
func NewNav(lookahead float64, sections []Section) *Nav {
	n := &Nav{
		Tracker:           Tracker{Lookahead: lookahead},
		ScrolledThreshold: DefaultScrolledThreshold,
	}
	if len(sections) > 0 {
		n.state.Active = sections[0].ID
	}
	return n
}

// State returns the current navigation state.
func (n *Nav) State() NavState { return n.state }

// Update recomputes the state for scrollY and reports whether it changed.
func (n *Nav) Update(scrollY float64, sections []Section) bool {
	next := NavState{
		Active:   n.Tracker.Active(sections, scrollY),
		Scrolled: scrollY > n.ScrolledThreshold,
	}
	if next.Active == "" {
		next.Active = n.state.Active
	}
	changed := next != n.state
	n.state = next
	return changed
}

package sat

import "time"

// TimeoutGuard is a cheap wall-clock deadline checked from search hot loops.
// Clock I/O only happens once every checkStride calls; the call counter
// itself is incremented on every call. This bounds the overhead of timeout
// checking to O(1) per call and caps timing imprecision at roughly the time
// taken by checkStride search steps.
type TimeoutGuard struct {
	deadline time.Time
	calls    uint64
}

const checkStride = 10000

// NewTimeoutGuard returns a guard that fires once d has elapsed. A
// non-positive d never fires.
func NewTimeoutGuard(d time.Duration) *TimeoutGuard {
	g := &TimeoutGuard{}
	if d > 0 {
		g.deadline = time.Now().Add(d)
	}
	return g
}

// Expired reports whether the deadline has passed. It samples the clock
// only every checkStride calls.
func (g *TimeoutGuard) Expired() bool {
	g.calls++
	if g.deadline.IsZero() {
		return false
	}
	if g.calls%checkStride != 0 {
		return false
	}
	return time.Now().After(g.deadline)
}

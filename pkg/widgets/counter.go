package widgets

import (
	"math"
	"time"
)

// CounterDuration is how long a stat counter takes to reach its target.
const CounterDuration = 2000 * time.Millisecond

// EaseOutQuart maps progress p to 1-(1-p)^4, clamping p to [0, 1].
func EaseOutQuart(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	return 1 - math.Pow(1-p, 4)
}

// Counter animates a number from 0 to Target.
type Counter struct {
	Target   int
	Duration time.Duration
}

// NewCounter returns a counter with the stock duration.
func NewCounter(target int) Counter {
	return Counter{Target: target, Duration: CounterDuration}
}

// Progress returns how far through the animation elapsed is, in [0, 1].
func (c Counter) Progress(elapsed time.Duration) float64 {
	if c.Duration <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, float64(elapsed)/float64(c.Duration)))
}

// Value returns the number to display after elapsed. It lands exactly on
// Target once the duration has passed.
func (c Counter) Value(elapsed time.Duration) int {
	p := c.Progress(elapsed)
	if p >= 1 {
		return c.Target
	}
	return int(math.Floor(float64(c.Target) * EaseOutQuart(p)))
}

// Done reports whether the animation has finished.
func (c Counter) Done(elapsed time.Duration) bool {
	return c.Progress(elapsed) >= 1
}

// Rect is the vertical extent of an element relative to the viewport top.
type Rect struct {
	Top    float64
	Bottom float64
}

// InViewport reports whether any part of r is vertically visible in a
// viewport of the given height.
func (r Rect) InViewport(viewportHeight float64) bool {
	return r.Top < viewportHeight && r.Bottom > 0
}

// CounterGroup is the set of counters inside one stats container. The group
// fires at most once per page life.
type CounterGroup struct {
	Counters []Counter
	fired    bool
}

// NewCounterGroup builds a group of stock-duration counters for targets.
func NewCounterGroup(targets ...int) *CounterGroup {
	g := &CounterGroup{Counters: make([]Counter, len(targets))}
	for i, t := range targets {
		g.Counters[i] = NewCounter(t)
	}
	return g
}

// Observe is called on every scroll with the container position. It returns
// true only the first time the container is visible; later calls, visible or
// not, return false.
func (g *CounterGroup) Observe(container Rect, viewportHeight float64) bool {
	if g == nil || g.fired || !container.InViewport(viewportHeight) {
		return false
	}
	g.fired = true
	return true
}

// Fired reports whether the group has started animating.
func (g *CounterGroup) Fired() bool {
	return g != nil && g.fired
}

// Values returns every counter's display value after elapsed. Before the
// group fires all values are zero.
func (g *CounterGroup) Values(elapsed time.Duration) []int {
	if g == nil {
		return nil
	}
	out := make([]int, len(g.Counters))
	if !g.fired {
		return out
	}
	for i, c := range g.Counters {
		out[i] = c.Value(elapsed)
	}
	return out
}

package widgets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaseOutQuart(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutQuart(0))
	assert.Equal(t, 1.0, EaseOutQuart(1))
	assert.InDelta(t, 0.9375, EaseOutQuart(0.5), 1e-12)
	assert.Equal(t, 0.0, EaseOutQuart(-2))
	assert.Equal(t, 1.0, EaseOutQuart(3))
}

func TestCounter_Value(t *testing.T) {
	c := NewCounter(250)
	require.Equal(t, 2000*time.Millisecond, c.Duration)

	assert.Equal(t, 0, c.Value(0))
	assert.Equal(t, 234, c.Value(time.Second)) // floor(250*0.9375)
	assert.Equal(t, 250, c.Value(2*time.Second))
	assert.Equal(t, 250, c.Value(10*time.Second))
	assert.True(t, c.Done(2*time.Second))
	assert.False(t, c.Done(1999*time.Millisecond))

	prev := -1
	for ms := 0; ms <= 2100; ms += 5 {
		v := c.Value(time.Duration(ms) * time.Millisecond)
		assert.GreaterOrEqual(t, v, prev, "value decreased at %dms", ms)
		assert.LessOrEqual(t, v, 250)
		prev = v
	}
}

func TestCounter_ZeroDuration(t *testing.T) {
	c := Counter{Target: 7}
	assert.Equal(t, 7, c.Value(0))
}

func TestRect_InViewport(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"below the fold", Rect{Top: 900, Bottom: 1200}, false},
		{"touching the bottom edge", Rect{Top: 800, Bottom: 1100}, false},
		{"peeking in", Rect{Top: 790, Bottom: 1090}, true},
		{"fully visible", Rect{Top: 100, Bottom: 400}, true},
		{"scrolled past", Rect{Top: -400, Bottom: -10}, false},
		{"partly scrolled past", Rect{Top: -100, Bottom: 20}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.InViewport(800))
		})
	}
}

func TestCounterGroup_FiresOnce(t *testing.T) {
	g := NewCounterGroup(250, 12000, 95)

	assert.Equal(t, []int{0, 0, 0}, g.Values(time.Hour), "values stay zero before firing")
	assert.False(t, g.Observe(Rect{Top: 1500, Bottom: 1800}, 800))
	assert.False(t, g.Fired())

	assert.True(t, g.Observe(Rect{Top: 500, Bottom: 800}, 800))
	assert.True(t, g.Fired())

	// Leaving and re-entering the viewport never fires again.
	assert.False(t, g.Observe(Rect{Top: -900, Bottom: -600}, 800))
	assert.False(t, g.Observe(Rect{Top: 200, Bottom: 500}, 800))

	assert.Equal(t, []int{250, 12000, 95}, g.Values(CounterDuration))
}

func TestCounterGroup_Nil(t *testing.T) {
	var g *CounterGroup
	assert.False(t, g.Observe(Rect{Top: 0, Bottom: 10}, 800))
	assert.False(t, g.Fired())
	assert.Nil(t, g.Values(0))
}

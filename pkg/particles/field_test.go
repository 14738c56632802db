package particles

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSurface captures draw calls for inspection.
type recordingSurface struct {
	clears  int
	circles []circleCall
	lines   []lineCall
}

type circleCall struct {
	x, y, r float64
	c       color.Color
}

type lineCall struct {
	x1, y1, x2, y2, width float64
	c                     color.Color
}

func (s *recordingSurface) Clear() { s.clears++ }

func (s *recordingSurface) FillCircle(x, y, r float64, c color.Color) {
	s.circles = append(s.circles, circleCall{x, y, r, c})
}

func (s *recordingSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	s.lines = append(s.lines, lineCall{x1, y1, x2, y2, width, c})
}

func newTestField(cfg Config) *Field {
	return New(cfg, rand.New(rand.NewPCG(11, 29)))
}

func TestInitialize(t *testing.T) {
	for _, cfg := range []Config{DefaultConfig(), DenseConfig()} {
		for _, n := range []int{0, 1, 50, 60, 200} {
			f := newTestField(cfg)
			f.Initialize(n, 800, 600)
			require.Len(t, f.Particles, n)

			hues := map[float64]bool{}
			for _, p := range f.Particles {
				assert.True(t, p.X >= 0 && p.X <= 800, "x out of bounds: %v", p.X)
				assert.True(t, p.Y >= 0 && p.Y <= 600, "y out of bounds: %v", p.Y)
				assert.True(t, p.Radius >= cfg.MinRadius && p.Radius < cfg.MaxRadius, "radius %v", p.Radius)
				assert.True(t, p.Opacity >= cfg.MinOpacity && p.Opacity < cfg.MaxOpacity, "opacity %v", p.Opacity)
				assert.LessOrEqual(t, math.Abs(p.VX), cfg.MaxSpeed)
				assert.LessOrEqual(t, math.Abs(p.VY), cfg.MaxSpeed)
				assert.Contains(t, cfg.Hues[:], p.Hue)
				hues[p.Hue] = true
			}
			if n >= 50 {
				assert.Len(t, hues, 2, "both hues should appear in a large field")
			}
		}
	}

	f := newTestField(DefaultConfig())
	f.Initialize(-3, 100, 100)
	assert.Empty(t, f.Particles)
}

func TestResizeKeepsParticles(t *testing.T) {
	f := newTestField(DefaultConfig())
	f.Initialize(10, 400, 300)
	before := append([]Particle(nil), f.Particles...)

	f.Resize(1024, 768)

	w, h := f.Size()
	assert.Equal(t, 1024.0, w)
	assert.Equal(t, 768.0, h)
	assert.Equal(t, before, f.Particles)
}

func TestAdvance_Reflection(t *testing.T) {
	tests := []struct {
		name           string
		p              Particle
		wantVX, wantVY float64
		wantX, wantY   float64
	}{
		{"interior", Particle{X: 50, Y: 50, VX: 0.3, VY: -0.2}, 0.3, -0.2, 50.3, 49.8},
		{"crosses right", Particle{X: 99.9, Y: 50, VX: 0.3, VY: 0.1}, -0.3, 0.1, 100.2, 50.1},
		{"crosses left", Particle{X: 0.1, Y: 50, VX: -0.3, VY: 0.1}, 0.3, 0.1, -0.2, 50.1},
		{"crosses bottom", Particle{X: 50, Y: 99.95, VX: 0, VY: 0.1}, 0, -0.1, 50, 100.05},
		{"crosses top", Particle{X: 50, Y: 0.05, VX: 0.1, VY: -0.1}, 0.1, 0.1, 50.1, -0.05},
		{"corner", Particle{X: 99.9, Y: 99.9, VX: 0.2, VY: 0.2}, -0.2, -0.2, 100.1, 100.1},
		{"lands on edge", Particle{X: 99.5, Y: 50, VX: 0.5, VY: 0}, 0.5, 0, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(DefaultConfig())
			f.Resize(100, 100)
			f.Particles = []Particle{tt.p}

			f.Advance()

			got := f.Particles[0]
			assert.InDelta(t, tt.wantX, got.X, 1e-9)
			assert.InDelta(t, tt.wantY, got.Y, 1e-9)
			assert.Equal(t, tt.wantVX, got.VX)
			assert.Equal(t, tt.wantVY, got.VY)
		})
	}
}

func TestAdvance_SignFlipIffOutside(t *testing.T) {
	f := newTestField(DenseConfig())
	f.Initialize(60, 320, 240)
	for frame := 0; frame < 2000; frame++ {
		before := append([]Particle(nil), f.Particles...)
		f.Advance()
		for i, p := range f.Particles {
			outX := p.X < 0 || p.X > 320
			outY := p.Y < 0 || p.Y > 240
			require.Equal(t, outX, p.VX == -before[i].VX && p.VX != 0, "frame %d particle %d x", frame, i)
			require.Equal(t, outY, p.VY == -before[i].VY && p.VY != 0, "frame %d particle %d y", frame, i)
			// Without clamping a particle never strays more than one step out.
			slack := f.config.MaxSpeed + 1e-9
			require.True(t, p.X >= -slack && p.X <= 320+slack)
			require.True(t, p.Y >= -slack && p.Y <= 240+slack)
		}
	}
}

func TestLineOpacity(t *testing.T) {
	assert.Equal(t, 0.1, LineOpacity(0, 120, 0.1))
	assert.InDelta(t, 0.05, LineOpacity(60, 120, 0.1), 1e-12)
	assert.Equal(t, 0.0, LineOpacity(120, 120, 0.1))
	assert.Equal(t, 0.0, LineOpacity(500, 120, 0.1))
	assert.Equal(t, 0.0, LineOpacity(10, 0, 0.1))

	prev := LineOpacity(0, 100, 0.2)
	for d := 1.0; d <= 100; d++ {
		cur := LineOpacity(d, 100, 0.2)
		assert.Less(t, cur, prev, "opacity must strictly decrease at d=%v", d)
		prev = cur
	}
}

func TestLinks(t *testing.T) {
	f := newTestField(DefaultConfig())
	f.Resize(1000, 1000)
	f.Particles = []Particle{
		{X: 0, Y: 0},
		{X: 60, Y: 80},   // 100 from #0
		{X: 500, Y: 500}, // far from everything
		{X: 60, Y: 200},  // 120 from #1: exactly at the threshold
	}

	links := f.Links()

	require.Len(t, links, 1)
	assert.Equal(t, 0, links[0].A)
	assert.Equal(t, 1, links[0].B)
	assert.InDelta(t, 100, links[0].Dist, 1e-9)
	assert.InDelta(t, 0.1*(1-100.0/120), links[0].Opacity, 1e-12)
}

func TestLinks_PairCount(t *testing.T) {
	cfg := DenseConfig()
	cfg.LinkDistance = math.Inf(1)
	f := newTestField(cfg)
	f.Initialize(60, 100, 100)
	assert.Len(t, f.Links(), 60*59/2)
}

func TestRender(t *testing.T) {
	f := newTestField(DefaultConfig())
	f.Resize(500, 500)
	f.Particles = []Particle{
		{X: 10, Y: 10, Radius: 2, Opacity: 0.5, Hue: 239},
		{X: 20, Y: 10, Radius: 1, Opacity: 0.2, Hue: 187},
		{X: 400, Y: 400, Radius: 1, Opacity: 0.2, Hue: 187},
	}
	s := &recordingSurface{}

	f.Render(s)

	assert.Equal(t, 1, s.clears)
	require.Len(t, s.circles, 3)
	assert.Equal(t, 2.0, s.circles[0].r)
	fill := s.circles[0].c.(color.NRGBA)
	assert.Equal(t, f.ParticleColor(f.Particles[0]), fill)
	assert.Equal(t, uint8(128), fill.A)
	assert.Greater(t, fill.B, fill.R, "hue 239 should be blue-dominant")
	assert.Greater(t, fill.B, fill.G, "hue 239 should be blue-dominant")
	require.Len(t, s.lines, 1)
	assert.Equal(t, 0.5, s.lines[0].width)
	lc := s.lines[0].c.(color.NRGBA)
	assert.Equal(t, uint8(99), lc.R)
	assert.Equal(t, uint8(102), lc.G)
	assert.Equal(t, uint8(241), lc.B)
	assert.Equal(t, alpha8(LineOpacity(10, 120, 0.1)), lc.A)
}

func TestRender_MissingSurface(t *testing.T) {
	f := newTestField(DefaultConfig())
	f.Initialize(5, 100, 100)
	assert.NotPanics(t, func() { f.Render(nil) })

	var nilField *Field
	assert.NotPanics(t, func() {
		nilField.Advance()
		nilField.Render(&recordingSurface{})
	})
}

func TestStep(t *testing.T) {
	f := newTestField(DefaultConfig())
	f.Initialize(3, 100, 100)
	before := f.Particles[0]
	s := &recordingSurface{}

	f.Step(s)

	assert.Equal(t, 1, s.clears)
	assert.Len(t, s.circles, 3)
	assert.InDelta(t, before.X+before.VX, f.Particles[0].X, 1e-12)
}

// BenchmarkLinks measures the O(n²) pair scan at the dense page size.
func BenchmarkLinks(b *testing.B) {
	f := New(DenseConfig(), rand.New(rand.NewPCG(1, 2)))
	f.Initialize(60, 1920, 1080)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Links()
	}
}

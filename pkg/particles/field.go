package particles

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Particle is a single point of the field. Radius, Opacity and Hue are fixed
// at creation; position and velocity change every frame.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Hue     float64
}

// Link joins two particles closer than the link distance.
type Link struct {
	A, B    int // indices into Particles, A < B
	Dist    float64
	Opacity float64
}

// Surface is the drawing target of a field.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
}

// Field owns a set of particles and the size of the surface they move on.
// A Field is driven from a single frame callback and is not safe for
// concurrent use.
type Field struct {
	Particles []Particle

	config Config
	rng    *rand.Rand
	width  float64
	height float64
}

// New creates an empty field. A nil rng uses a randomly seeded generator.
func New(config Config, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{config: config, rng: rng}
}

// Config returns the field configuration.
func (f *Field) Config() Config {
	return f.config
}

// Size returns the current surface size.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Initialize sizes the surface and replaces the particle set with count
// freshly randomized particles. A negative count is treated as zero.
func (f *Field) Initialize(count int, width, height float64) {
	f.Resize(width, height)
	count = max(count, 0)
	f.Particles = make([]Particle, count)
	for i := range f.Particles {
		f.Particles[i] = f.newParticle()
	}
}

func (f *Field) newParticle() Particle {
	c := f.config
	return Particle{
		X:       f.rng.Float64() * f.width,
		Y:       f.rng.Float64() * f.height,
		VX:      (f.rng.Float64()*2 - 1) * c.MaxSpeed,
		VY:      (f.rng.Float64()*2 - 1) * c.MaxSpeed,
		Radius:  c.MinRadius + f.rng.Float64()*(c.MaxRadius-c.MinRadius),
		Opacity: c.MinOpacity + f.rng.Float64()*(c.MaxOpacity-c.MinOpacity),
		Hue:     c.Hues[f.rng.IntN(2)],
	}
}

// Resize changes the surface size. Particles keep their state; ones left
// outside the new bounds drift back in through the normal edge reflection.
func (f *Field) Resize(width, height float64) {
	f.width = math.Max(width, 0)
	f.height = math.Max(height, 0)
}

// Advance moves every particle by its velocity. A velocity component flips
// sign when the new position on that axis lies outside [0, extent].
// Positions are not clamped, so a particle can sit up to one step outside
// the surface for a frame before it comes back.
func (f *Field) Advance() {
	if f == nil {
		return
	}
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X < 0 || p.X > f.width {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > f.height {
			p.VY = -p.VY
		}
	}
}

// LineOpacity is the opacity of a link between two particles distance apart:
// baseAlpha at distance 0, falling linearly to 0 at threshold and beyond.
func LineOpacity(distance, threshold, baseAlpha float64) float64 {
	if threshold <= 0 || distance < 0 || distance >= threshold {
		return 0
	}
	return baseAlpha * (1 - distance/threshold)
}

// Links returns every unordered pair of particles closer than the link
// distance, with its line opacity.
func (f *Field) Links() []Link {
	if f == nil {
		return nil
	}
	threshold := f.config.LinkDistance
	var links []Link
	for i := 0; i < len(f.Particles); i++ {
		a := f.Particles[i]
		for j := i + 1; j < len(f.Particles); j++ {
			b := f.Particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d < threshold {
				links = append(links, Link{
					A:       i,
					B:       j,
					Dist:    d,
					Opacity: LineOpacity(d, threshold, f.config.LinkAlpha),
				})
			}
		}
	}
	return links
}

// ParticleColor returns the fill colour of p: the field's saturation and
// lightness applied to the particle hue, with the particle opacity as alpha.
func (f *Field) ParticleColor(p Particle) color.NRGBA {
	c := colorful.Hsl(p.Hue, f.config.Saturation, f.config.Lightness).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(p.Opacity)}
}

// LinkColor returns the stroke colour for a link of the given opacity.
func (f *Field) LinkColor(opacity float64) color.NRGBA {
	lc := f.config.LinkColor
	return color.NRGBA{R: lc.R, G: lc.G, B: lc.B, A: alpha8(opacity)}
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
}

// Render clears s and draws every particle followed by every link.
// Nothing happens when either the field or the surface is missing.
func (f *Field) Render(s Surface) {
	if f == nil || s == nil {
		return
	}
	s.Clear()
	for _, p := range f.Particles {
		s.FillCircle(p.X, p.Y, p.Radius, f.ParticleColor(p))
	}
	for _, l := range f.Links() {
		a, b := f.Particles[l.A], f.Particles[l.B]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, f.config.LinkWidth, f.LinkColor(l.Opacity))
	}
}

// Step runs one frame: Advance followed by Render.
func (f *Field) Step(s Surface) {
	f.Advance()
	f.Render(s)
}

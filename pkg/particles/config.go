package particles

import "image/color"

// Config holds the tunables of a particle field. Ranges are half-open,
// [Min, Max).
type Config struct {
	// Count is the number of particles created by Initialize.
	Count int `json:"count" yaml:"count"`

	// MaxSpeed bounds each velocity component to [-MaxSpeed, MaxSpeed).
	MaxSpeed float64 `json:"max_speed" yaml:"max_speed"`

	MinRadius  float64 `json:"min_radius" yaml:"min_radius"`
	MaxRadius  float64 `json:"max_radius" yaml:"max_radius"`
	MinOpacity float64 `json:"min_opacity" yaml:"min_opacity"`
	MaxOpacity float64 `json:"max_opacity" yaml:"max_opacity"`

	// Hues are the two colour categories, in degrees. Each particle gets one
	// of them with equal probability.
	Hues       [2]float64 `json:"hues" yaml:"hues"`
	Saturation float64    `json:"saturation" yaml:"saturation"`
	Lightness  float64    `json:"lightness" yaml:"lightness"`

	// LinkDistance is the distance below which two particles are joined.
	LinkDistance float64 `json:"link_distance" yaml:"link_distance"`
	// LinkAlpha is the opacity of a link between two coincident particles.
	LinkAlpha float64    `json:"link_alpha" yaml:"link_alpha"`
	LinkColor color.RGBA `json:"-" yaml:"-"`
	LinkWidth float64    `json:"link_width" yaml:"link_width"`
}

// DefaultConfig is the stock landing page field.
func DefaultConfig() Config {
	return Config{
		Count:        50,
		MaxSpeed:     0.25,
		MinRadius:    0.5,
		MaxRadius:    2.5,
		MinOpacity:   0.1,
		MaxOpacity:   0.6,
		Hues:         [2]float64{239, 187}, // purple, cyan
		Saturation:   0.8,
		Lightness:    0.6,
		LinkDistance: 120,
		LinkAlpha:    0.1,
		LinkColor:    color.RGBA{R: 99, G: 102, B: 241, A: 255},
		LinkWidth:    0.5,
	}
}

// DenseConfig is the variant used on the secondary pages: more, faster and
// brighter particles with shorter links.
func DenseConfig() Config {
	c := DefaultConfig()
	c.Count = 60
	c.MaxSpeed = 0.4
	c.MaxOpacity = 0.9
	c.LinkDistance = 100
	return c
}

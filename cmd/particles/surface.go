package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface draws a particle field onto an ebiten frame.
type screenSurface struct {
	screen     *ebiten.Image
	background color.Color
}

func (s screenSurface) Clear() {
	s.screen.Fill(s.background)
}

func (s screenSurface) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.screen, float32(x), float32(y), float32(r), c, true)
}

func (s screenSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(s.screen, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

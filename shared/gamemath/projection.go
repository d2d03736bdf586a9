package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Projection maps world units (y up, origin at centre) to screen pixels
// (y down, origin at top-left) and back.
type Projection struct {
	PixelsPerUnit float64
	Width         float64
	Height        float64
}

// ToScreen converts a world point to screen pixels.
func (p Projection) ToScreen(v dmath.Vec2) (x, y float64) {
	return p.Width/2 + v.X*p.PixelsPerUnit, p.Height/2 - v.Y*p.PixelsPerUnit
}

// ToWorld converts a screen point to world units.
func (p Projection) ToWorld(x, y float64) dmath.Vec2 {
	return dmath.Vec2{
		X: (x - p.Width/2) / p.PixelsPerUnit,
		Y: (p.Height/2 - y) / p.PixelsPerUnit,
	}
}

// RectToWorld converts a top-left pixel rectangle to a world centre and size.
func (p Projection) RectToWorld(x, y, w, h float64) (centre dmath.Vec2, width, height float64) {
	return p.ToWorld(x+w/2, y+h/2), w / p.PixelsPerUnit, h / p.PixelsPerUnit
}

// BoundsToScreen returns the top-left pixel rectangle covering body.
func (p Projection) BoundsToScreen(b Body) (x, y, w, h float64) {
	cx, cy := p.ToScreen(b.Position)
	w = b.Shape.ExtentX() * p.PixelsPerUnit
	h = b.Shape.ExtentY() * p.PixelsPerUnit
	return cx - w/2, cy - h/2, w, h
}

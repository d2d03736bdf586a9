package gamemath

import "math"

// Overlaps is the exact narrowphase test. Shapes that only touch do not
// overlap.
func Overlaps(a, b Body) bool {
	switch {
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapeCircle:
		dx := a.Position.X - b.Position.X
		dy := a.Position.Y - b.Position.Y
		r := a.Shape.Radius + b.Shape.Radius
		return dx*dx+dy*dy < r*r
	case a.Shape.Kind == ShapeCircle:
		return circleOverlapsBox(a, b)
	case b.Shape.Kind == ShapeCircle:
		return circleOverlapsBox(b, a)
	}

	overlapX := math.Abs(a.Position.X-b.Position.X) < (a.Shape.Width+b.Shape.Width)/2
	overlapY := math.Abs(a.Position.Y-b.Position.Y) < (a.Shape.Height+b.Shape.Height)/2
	return overlapX && overlapY
}

func circleOverlapsBox(c, box Body) bool {
	halfW := box.Shape.Width / 2
	halfH := box.Shape.Height / 2

	nearestX := clamp(c.Position.X, box.Position.X-halfW, box.Position.X+halfW)
	nearestY := clamp(c.Position.Y, box.Position.Y-halfH, box.Position.Y+halfH)

	dx := c.Position.X - nearestX
	dy := c.Position.Y - nearestY
	return dx*dx+dy*dy < c.Shape.Radius*c.Shape.Radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

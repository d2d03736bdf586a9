package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// DefaultEpsilon keeps a corrected mover from resting exactly on the
// boundary. Exactly touching shapes do not start a new contact, which would
// let a bat slide through the wall on the next push.
const DefaultEpsilon = 0.025

// CorrectPosition returns where mover should be placed so it sits just
// outside boundary on the side it already occupies.
func CorrectPosition(mover, boundary Body) dmath.Vec2 {
	return CorrectPositionWithMargin(mover, boundary, DefaultEpsilon)
}

// CorrectPositionWithMargin is CorrectPosition with an explicit margin.
// Only y changes; ties go above the boundary.
func CorrectPositionWithMargin(mover, boundary Body, margin float64) dmath.Vec2 {
	offset := (mover.Shape.ExtentY()+boundary.Shape.ExtentY())/2 + margin

	dir := 1.0
	if mover.Position.Y < boundary.Position.Y {
		dir = -1.0
	}

	return dmath.Vec2{
		X: mover.Position.X,
		Y: boundary.Position.Y + dir*offset,
	}
}

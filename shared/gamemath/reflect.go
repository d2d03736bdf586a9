package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// DefaultSpeedUp is applied to the whole velocity on every bat hit.
const DefaultSpeedUp = 1.03

// Reflect applies the outcome to v using DefaultSpeedUp.
func Reflect(v dmath.Vec2, o Outcome) dmath.Vec2 {
	return ReflectWithSpeedUp(v, o, DefaultSpeedUp)
}

// ReflectWithSpeedUp negates x and scales by speedUp for a bat hit, negates y
// for a wall hit and leaves v alone otherwise. Repeated bat hits compound, so
// rally speed has no upper bound.
func ReflectWithSpeedUp(v dmath.Vec2, o Outcome, speedUp float64) dmath.Vec2 {
	switch o.Kind {
	case OutcomeReflectHorizontal:
		return dmath.Vec2{X: -v.X * speedUp, Y: v.Y * speedUp}
	case OutcomeReflectVertical:
		return dmath.Vec2{X: v.X, Y: -v.Y}
	}
	return v
}

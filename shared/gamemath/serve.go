package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// ServeDiagonals is the number of launch directions a serve picks from.
const ServeDiagonals = 4

// ServeVelocity returns a velocity of the given speed along diagonal d
// (0 → 45°, 1 → 135°, 2 → 225°, 3 → 315°). d is taken modulo ServeDiagonals.
func ServeVelocity(speed float64, d int) dmath.Vec2 {
	d = ((d % ServeDiagonals) + ServeDiagonals) % ServeDiagonals
	angle := (45.0 + float64(d)*90.0) * math.Pi / 180.0
	return dmath.Vec2{
		X: speed * math.Cos(angle),
		Y: speed * math.Sin(angle),
	}
}

// Speed returns the magnitude of v.
func Speed(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Integrate advances pos by vel over dt seconds.
func Integrate(pos, vel dmath.Vec2, dt float64) dmath.Vec2 {
	return dmath.Vec2{X: pos.X + vel.X*dt, Y: pos.Y + vel.Y*dt}
}

// ApproachAxis returns the signed speed needed to move from current toward
// target, zero inside the dead zone.
func ApproachAxis(current, target, deadZone, speed float64) float64 {
	diff := target - current
	if diff > deadZone {
		return speed
	}
	if diff < -deadZone {
		return -speed
	}
	return 0
}

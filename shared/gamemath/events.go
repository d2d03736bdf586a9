package gamemath

import "github.com/yohamta/donburi"

// CollisionEvent reports that A and B started to overlap this step. It only
// references entities by id.
type CollisionEvent struct {
	A, B donburi.Entity
}

// PairKey identifies an unordered entity pair.
type PairKey struct {
	Lo, Hi donburi.Entity
}

// NewPairKey orders a and b so that (a, b) and (b, a) share a key.
func NewPairKey(a, b donburi.Entity) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{Lo: a, Hi: b}
}

// Other returns the member of the event that is not self, and whether self
// was part of the event at all.
func (e CollisionEvent) Other(self donburi.Entity) (donburi.Entity, bool) {
	switch self {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	}
	return 0, false
}

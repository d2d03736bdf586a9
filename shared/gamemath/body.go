// Package gamemath holds the court rules: collision classification, ball
// reflection, wall correction and the narrowphase overlap test. It has no
// dependencies on ebitengine, donburi's ECS or resolv.
package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Kind is the closed set of things that can take part in a collision.
type Kind int

const (
	KindNone Kind = iota
	KindBall
	KindBat
	KindWall
	KindEndZone
)

func (k Kind) String() string {
	switch k {
	case KindBall:
		return "Ball"
	case KindBat:
		return "Bat"
	case KindWall:
		return "Wall"
	case KindEndZone:
		return "EndZone"
	default:
		return "None"
	}
}

// Side says which player a bat or end zone belongs to.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// ShapeKind selects how Shape is interpreted.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// Shape is either an axis-aligned box (Width, Height) or a circle (Radius),
// centred on the owning body's position.
type Shape struct {
	Kind   ShapeKind
	Width  float64
	Height float64
	Radius float64
}

// Box returns an axis-aligned box shape.
func Box(w, h float64) Shape {
	return Shape{Kind: ShapeBox, Width: w, Height: h}
}

// Circle returns a circle shape.
func Circle(r float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: r}
}

// ExtentX is the full size of the shape along x.
func (s Shape) ExtentX() float64 {
	if s.Kind == ShapeCircle {
		return 2 * s.Radius
	}
	return s.Width
}

// ExtentY is the full size of the shape along y.
func (s Shape) ExtentY() float64 {
	if s.Kind == ShapeCircle {
		return 2 * s.Radius
	}
	return s.Height
}

// Body is the rule-facing view of an entity. Positions are world units,
// y up, origin at the centre of the court.
type Body struct {
	Kind     Kind
	Side     Side
	Shape    Shape
	Position dmath.Vec2
	Velocity dmath.Vec2
}

// Valid reports whether the body carries enough data to take part in a
// collision response.
func (b Body) Valid() bool {
	return b.Kind != KindNone && b.Shape.ExtentX() > 0 && b.Shape.ExtentY() > 0
}

// Package leveldata provides TMX court parsing.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Object classes recognised in the court object group.
const (
	ClassWall    = "wall"
	ClassBat     = "bat"
	ClassEndZone = "endzone"
	ClassBall    = "ball"
)

// Sides, from the "side" object property.
const (
	SideLeft  = "left"
	SideRight = "right"
)

// CourtData holds the court layout in map pixels, y down.
type CourtData struct {
	Walls    []Rect
	Bats     map[string]Rect // keyed by side
	EndZones map[string]Rect // keyed by side
	Ball     Rect

	MapWidth  int
	MapHeight int
}

// Rect is an axis-aligned pixel rectangle with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64  { return r.X }
func (r Rect) Right() float64 { return r.X + r.W }

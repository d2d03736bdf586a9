package leveldata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// CourtGroup is the object group the court layout is read from.
const CourtGroup = "court"

// ErrInvalidCourt is returned for layouts that break the court invariants.
var ErrInvalidCourt = errors.New("invalid court")

// LoadCourt parses a TMX file and returns its validated court layout. It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadCourt(fsys fs.FS, tmxPath string) (*CourtData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data, err := courtFromMap(levelMap)
	if err != nil {
		return nil, fmt.Errorf("court %s: %w", tmxPath, err)
	}
	return data, nil
}

func courtFromMap(levelMap *tiled.Map) (*CourtData, error) {
	data := &CourtData{
		Bats:      make(map[string]Rect, 2),
		EndZones:  make(map[string]Rect, 2),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	balls := 0
	found := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != CourtGroup {
			continue
		}
		found = true

		for _, o := range og.Objects {
			r := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			if r.W <= 0 || r.H <= 0 {
				return nil, fmt.Errorf("object %d (%s) has no area: %w", o.ID, o.Name, ErrInvalidCourt)
			}

			class := o.Class
			switch class {
			case ClassWall:
				data.Walls = append(data.Walls, r)
			case ClassBall:
				balls++
				data.Ball = r
			case ClassBat, ClassEndZone:
				side := o.Properties.GetString("side")
				if side != SideLeft && side != SideRight {
					return nil, fmt.Errorf("%s %d has side %q: %w", class, o.ID, side, ErrInvalidCourt)
				}
				dst := data.Bats
				if class == ClassEndZone {
					dst = data.EndZones
				}
				if _, dup := dst[side]; dup {
					return nil, fmt.Errorf("second %s %s: %w", side, class, ErrInvalidCourt)
				}
				dst[side] = r
			default:
				return nil, fmt.Errorf("object %d has unknown class %q: %w", o.ID, class, ErrInvalidCourt)
			}
		}
	}

	if !found {
		return nil, fmt.Errorf("no %q object group: %w", CourtGroup, ErrInvalidCourt)
	}
	if balls != 1 {
		return nil, fmt.Errorf("want 1 ball, got %d: %w", balls, ErrInvalidCourt)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return data, nil
}

// Validate checks the per-side requirements: one bat and one end zone per
// side, and both end zones far enough outside the bats that the ball can
// never overlap a bat and an end zone at the same time.
func (c *CourtData) Validate() error {
	for _, side := range []string{SideLeft, SideRight} {
		if _, ok := c.Bats[side]; !ok {
			return fmt.Errorf("missing %s bat: %w", side, ErrInvalidCourt)
		}
		if _, ok := c.EndZones[side]; !ok {
			return fmt.Errorf("missing %s end zone: %w", side, ErrInvalidCourt)
		}
	}
	if len(c.Walls) == 0 {
		return fmt.Errorf("no walls: %w", ErrInvalidCourt)
	}

	left, right := c.Bats[SideLeft], c.Bats[SideRight]
	if left.Right() >= right.Left() {
		return fmt.Errorf("left bat is not left of right bat: %w", ErrInvalidCourt)
	}
	if gap := left.Left() - c.EndZones[SideLeft].Right(); gap < c.Ball.W {
		return fmt.Errorf("left end zone %gpx from the bat, ball is %gpx wide: %w", gap, c.Ball.W, ErrInvalidCourt)
	}
	if gap := c.EndZones[SideRight].Left() - right.Right(); gap < c.Ball.W {
		return fmt.Errorf("right end zone %gpx from the bat, ball is %gpx wide: %w", gap, c.Ball.W, ErrInvalidCourt)
	}
	return nil
}

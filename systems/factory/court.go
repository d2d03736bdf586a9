package factory

import (
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// CourtOptions selects who controls each bat and seeds the serve.
type CourtOptions struct {
	LeftCPU  bool
	RightCPU bool
	Seed     int64
}

var sides = map[string]gamemath.Side{
	leveldata.SideLeft:  gamemath.SideLeft,
	leveldata.SideRight: gamemath.SideRight,
}

// CreateCourt spawns the broadphase space and every court entity from a
// validated layout, plus the match singleton.
func CreateCourt(ecs *ecs.ECS, court *leveldata.CourtData, opts CourtOptions) {
	proj := cfg.Projection()

	CreateSpace(ecs, court.MapWidth, court.MapHeight, cfg.Collision.CellSize)

	for _, r := range court.Walls {
		pos, w, h := proj.RectToWorld(r.X, r.Y, r.W, r.H)
		CreateWall(ecs, pos, w, h)
	}

	for _, name := range []string{leveldata.SideLeft, leveldata.SideRight} {
		r := court.EndZones[name]
		pos, w, h := proj.RectToWorld(r.X, r.Y, r.W, r.H)
		CreateEndZone(ecs, sides[name], pos, w, h)
	}

	for _, name := range []string{leveldata.SideLeft, leveldata.SideRight} {
		r := court.Bats[name]
		pos, w, h := proj.RectToWorld(r.X, r.Y, r.W, r.H)
		cpu := opts.LeftCPU
		if name == leveldata.SideRight {
			cpu = opts.RightCPU
		}
		CreateBat(ecs, sides[name], pos, w, h, cpu)
	}

	b := court.Ball
	ballPos, ballW, _ := proj.RectToWorld(b.X, b.Y, b.W, b.H)
	CreateBall(ecs, ballPos, ballW/2)

	CreateMatch(ecs, ballPos, opts.Seed)
}

package systems

import (
	"image/color"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	centreDashLength = 18
	centreDashGap    = 14
	centreLineWidth  = 4
)

// DrawCourt renders the background, end zones, walls, bats and the ball.
func DrawCourt(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	proj := cfg.Projection()
	ox, oy := ShakeOffset(ecs)

	drawCentreLine(screen, ox)

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Disabled {
			return
		}
		x, y, w, h := proj.BoundsToScreen(body.Body)
		x += ox
		y += oy

		switch body.Kind {
		case gamemath.KindEndZone:
			vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.UI.EndZoneColor, false)
		case gamemath.KindWall, gamemath.KindBat:
			vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), bodyColor(e, body), false)
		case gamemath.KindBall:
			vector.FillCircle(screen, float32(x+w/2), float32(y+h/2), float32(w/2), cfg.UI.BallColor, true)
		}
	})
}

func drawCentreLine(screen *ebiten.Image, ox float64) {
	x := float32(float64(cfg.C.Width)/2+ox) - centreLineWidth/2
	for y := 0; y < cfg.C.Height; y += centreDashLength + centreDashGap {
		vector.FillRect(screen, x, float32(y), centreLineWidth, centreDashLength, cfg.UI.CentreLineColor, false)
	}
}

// bodyColor returns the fill for walls and bats, brighter while flashing.
func bodyColor(e *donburi.Entry, body *components.BodyData) color.RGBA {
	c := cfg.UI.CourtColor
	if body.Kind == gamemath.KindBat {
		c = cfg.UI.BatColor
	}
	if e.HasComponent(components.Flash) && components.Flash.Get(e).Duration > 0 {
		return cfg.UI.TitleColor
	}
	return c
}

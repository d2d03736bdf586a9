package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // debug overlay uses the freetype faces
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every resolv object and prints ball and contact state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowColliders {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := debugColor(obj)
			x, y := obj.X, obj.Y

			// Draw outline
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	face := fonts.Regular.Get()
	lines := fmt.Sprintf("tps %.0f  contacts %d", ebiten.ActualTPS(), getOrCreateContacts(ecs).Len())
	if ball := ballBody(ecs); ball != nil {
		lines += fmt.Sprintf("\nball (%.2f, %.2f) v (%.2f, %.2f)", ball.Position.X, ball.Position.Y, ball.Velocity.X, ball.Velocity.Y)
	}
	if match, ok := getMatch(ecs); ok {
		lines += fmt.Sprintf("\nstate %s  frames %d", match.State, match.Frames)
	}
	text.Draw(screen, lines, face, 8, 20, cfg.UI.TextColor)
}

func debugColor(obj *resolv.Object) color.RGBA {
	kind := gamemath.KindNone
	switch {
	case obj.HasTags(tags.ResolvBall):
		kind = gamemath.KindBall
	case obj.HasTags(tags.ResolvBat):
		kind = gamemath.KindBat
	case obj.HasTags(tags.ResolvWall):
		kind = gamemath.KindWall
	case obj.HasTags(tags.ResolvEndZone):
		kind = gamemath.KindEndZone
	}
	if c, ok := cfg.UI.DebugColliderColors[kind]; ok {
		return c
	}
	return cfg.Cyan
}

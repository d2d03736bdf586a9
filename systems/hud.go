package systems

import (
	"bytes"
	"fmt"
	"log"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // scores use the freetype faces
	textv2 "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/gobold"
)

var bannerFace textv2.Face

// DrawHUD renders the win tally, the current rally and the winner banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	width := cfg.C.Width

	scoreboard := getOrCreateScoreboard(ecs)
	scoreFont := fonts.Score.Get()
	left := fmt.Sprint(scoreboard.LeftWins)
	right := fmt.Sprint(scoreboard.RightWins)

	lb := text.BoundString(scoreFont, left)
	text.Draw(screen, left, scoreFont, width/2-int(cfg.UI.ScoreOffsetX)-lb.Dx(), int(cfg.UI.ScoreY), cfg.UI.TextColor)
	text.Draw(screen, right, scoreFont, width/2+int(cfg.UI.ScoreOffsetX), int(cfg.UI.ScoreY), cfg.UI.TextColor)

	if match, ok := getMatch(ecs); ok && match.State == cfg.MatchStateRunning && match.Rallies > 0 {
		small := fonts.Regular.Get()
		rally := fmt.Sprintf("rally %d", match.Rallies)
		rb := text.BoundString(small, rally)
		text.Draw(screen, rally, small, (width-rb.Dx())/2, cfg.C.Height-24, cfg.UI.TextColor)
	}

	drawBanner(ecs, screen)
}

func drawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	banner, ok := getBanner(ecs)
	if !ok || !banner.Visible || banner.Scale <= 0 {
		return
	}
	face := getBannerFace()
	if face == nil {
		return
	}

	w, h := textv2.Measure(banner.Text, face, 0)
	op := &textv2.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(banner.Scale, banner.Scale)
	op.GeoM.Translate(float64(cfg.C.Width)/2, float64(cfg.C.Height)/3)
	op.ColorScale.ScaleWithColor(cfg.UI.BannerColor)
	textv2.Draw(screen, banner.Text, face, op)
}

func getBannerFace() textv2.Face {
	if bannerFace != nil {
		return bannerFace
	}
	source, err := textv2.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Warning: Could not load banner font: %v", err)
		return nil
	}
	bannerFace = &textv2.GoTextFace{Source: source, Size: cfg.UI.TitleFontSize}
	return bannerFace
}

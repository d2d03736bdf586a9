package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBanner advances the winner banner's scale tween.
func UpdateBanner(e *ecs.ECS) {
	banner, ok := getBanner(e)
	if !ok || !banner.Visible || banner.Tween == nil {
		return
	}
	scale, _ := banner.Tween.Update(float32(cfg.TickSeconds()))
	banner.Scale = float64(scale)
}

func showBanner(e *ecs.ECS, text string) {
	banner, ok := getBanner(e)
	if !ok {
		return
	}
	banner.Text = text
	banner.Visible = true
	banner.Scale = 0
	banner.Tween = gween.New(0, float32(cfg.Match.BannerScale), float32(cfg.Match.BannerDuration), ease.OutBack)
}

func hideBanner(e *ecs.ECS) {
	banner, ok := getBanner(e)
	if !ok {
		return
	}
	banner.Visible = false
	banner.Tween = nil
}

func getBanner(e *ecs.ECS) (*components.BannerData, bool) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Banner.Get(entry), true
}

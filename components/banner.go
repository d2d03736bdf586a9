package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the winner announcement. Tween drives its scale from 0 to
// config.Match.BannerScale; Scale holds the latest value.
type BannerData struct {
	Text    string
	Visible bool
	Tween   *gween.Tween
	Scale   float64
}

var Banner = donburi.NewComponentType[BannerData]()

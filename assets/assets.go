package assets

import (
	"embed"

	"github.com/automoto/pong/shared/leveldata"
)

// CourtPath is the court layout inside the embedded level filesystem.
const CourtPath = "levels/court.tmx"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadCourt parses and validates the embedded court.
func LoadCourt() (*leveldata.CourtData, error) {
	return leveldata.LoadCourt(assetFS, CourtPath)
}

package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// ScanlineShader darkens every other row of the finished frame
	ScanlineShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/scanlines.kage")
	if err != nil {
		return err
	}
	ScanlineShader, err = ebiten.NewShader(src)
	if err != nil {
		return err
	}

	return nil
}

package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Score   FontName = "score"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the Go fonts at the sizes the HUD uses.
func LoadDefaults(textSize, titleSize, scoreSize float64) error {
	if err := LoadFontWithSize(Regular, goregular.TTF, textSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Bold, gobold.TTF, textSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Title, gobold.TTF, titleSize); err != nil {
		return err
	}
	return LoadFontWithSize(Score, gobold.TTF, scoreSize)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	textv2 "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
)

type FontName string

const (
	Mono     FontName = "mono"
	MonoBold FontName = "mono-bold"
	Title    FontName = "title"
	Small    FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts   = map[FontName]font.Face{}
	sources = map[FontName]*textv2.GoTextFaceSource{}
)

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 12)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})

	if src, err := textv2.NewGoTextFaceSource(bytes.NewReader(ttf)); err == nil {
		sources[name] = src
	}
}

// UIFace returns a text/v2 face of the given size for ebitenui widgets.
func UIFace(name FontName, size float64) textv2.Face {
	src, ok := sources[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return &textv2.GoTextFace{Source: src, Size: size}
}

// Width returns the advance width of s in pixels.
func Width(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

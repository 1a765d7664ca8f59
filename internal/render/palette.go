package render

import (
	"image/color"

	"lifesim/internal/config"
)

// Palette holds the three colors a theme resolves to.
type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
	Gridline   color.RGBA
}

var (
	lightPalette = Palette{
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Foreground: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Gridline:   color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	}
	darkPalette = Palette{
		Background: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Foreground: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Gridline:   color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff},
	}
)

// PaletteFor resolves a theme name. Unknown themes get the light palette.
func PaletteFor(theme string) Palette {
	if theme == config.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// Cell returns the fill color for a cell state.
func (p Palette) Cell(alive bool) color.RGBA {
	if alive {
		return p.Foreground
	}
	return p.Background
}

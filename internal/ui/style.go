package ui

import (
	"image/color"

	"lifesim/internal/config"
)

// Style colors the widgets of one theme.
type Style struct {
	Panel        color.RGBA
	Text         color.RGBA
	Muted        color.RGBA
	Button       color.RGBA
	ButtonText   color.RGBA
	ButtonOff    color.RGBA
	ButtonOffTxt color.RGBA
	Field        color.RGBA
	FieldBorder  color.RGBA
	Focus        color.RGBA
	Shade        color.RGBA
}

var (
	darkStyle = Style{
		Panel:        color.RGBA{R: 16, G: 16, B: 20, A: 255},
		Text:         color.RGBA{R: 220, G: 220, B: 230, A: 255},
		Muted:        color.RGBA{R: 160, G: 160, B: 170, A: 255},
		Button:       color.RGBA{R: 54, G: 56, B: 64, A: 255},
		ButtonText:   color.RGBA{R: 230, G: 230, B: 240, A: 255},
		ButtonOff:    color.RGBA{R: 32, G: 34, B: 40, A: 255},
		ButtonOffTxt: color.RGBA{R: 120, G: 120, B: 130, A: 255},
		Field:        color.RGBA{R: 28, G: 28, B: 34, A: 255},
		FieldBorder:  color.RGBA{R: 80, G: 80, B: 90, A: 255},
		Focus:        color.RGBA{R: 90, G: 150, B: 230, A: 255},
		Shade:        color.RGBA{A: 160},
	}
	lightStyle = Style{
		Panel:        color.RGBA{R: 236, G: 236, B: 238, A: 255},
		Text:         color.RGBA{R: 24, G: 24, B: 28, A: 255},
		Muted:        color.RGBA{R: 96, G: 96, B: 104, A: 255},
		Button:       color.RGBA{R: 210, G: 212, B: 218, A: 255},
		ButtonText:   color.RGBA{R: 20, G: 20, B: 24, A: 255},
		ButtonOff:    color.RGBA{R: 226, G: 226, B: 230, A: 255},
		ButtonOffTxt: color.RGBA{R: 150, G: 150, B: 156, A: 255},
		Field:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		FieldBorder:  color.RGBA{R: 170, G: 170, B: 176, A: 255},
		Focus:        color.RGBA{R: 40, G: 110, B: 210, A: 255},
		Shade:        color.RGBA{A: 110},
	}
)

// StyleFor resolves a theme name to widget colors.
func StyleFor(theme string) Style {
	if theme == config.ThemeDark {
		return darkStyle
	}
	return lightStyle
}

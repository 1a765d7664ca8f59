//go:build ebiten

package ui

import (
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	faceOnce sync.Once
	face     font.Face
)

// Face returns the widget font. Go Regular covers the Polish letters used in
// the messages; basicfont is the fallback if it cannot be parsed.
func Face() font.Face {
	faceOnce.Do(func() {
		face = basicfont.Face7x13
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			log.Printf("ui: parse font: %v", err)
			return
		}
		ff, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 14, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			log.Printf("ui: create font face: %v", err)
			return
		}
		face = ff
	})
	return face
}

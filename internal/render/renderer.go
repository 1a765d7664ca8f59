//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Painter uploads a Surface into an ebiten image and draws it.
type Painter struct {
	surface *Surface
	img     *ebiten.Image
}

// NewPainter allocates the GPU image backing the surface.
func NewPainter(s *Surface) *Painter {
	return &Painter{surface: s, img: ebiten.NewImage(s.PixelWidth(), s.PixelHeight())}
}

// Blit uploads the surface when any cell changed and draws it at the origin of
// dst.
func (p *Painter) Blit(dst *ebiten.Image) {
	if p.surface.Dirty() {
		p.img.WritePixels(p.surface.Pixels())
		p.surface.MarkClean()
	}
	dst.DrawImage(p.img, nil)
}

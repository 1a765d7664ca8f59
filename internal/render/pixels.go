package render

import (
	"image"
	"image/color"
)

// fillRect paints r into an RGBA buffer that is stride pixels wide.
func fillRect(buf []byte, stride int, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := (y*stride + r.Min.X) * 4
		for x := r.Min.X; x < r.Max.X; x++ {
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
			base += 4
		}
	}
}

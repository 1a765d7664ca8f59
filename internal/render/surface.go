// Package render maps grid cells onto an RGBA pixel surface and keeps it in
// sync with the automaton by repainting only the cells that change.
package render

import (
	"image"

	"lifesim/internal/core"
)

// CellPainter repaints a single cell.
type CellPainter interface {
	SetCell(x, y int, alive bool)
}

// Surface owns one visual cell per grid cell. Each visual cell is a
// cellSize-square region of an RGBA buffer whose top and left edges carry the
// gridline color when the cells are large enough to show them.
type Surface struct {
	w, h     int
	cellSize int
	pal      Palette

	rects []image.Rectangle
	alive []bool
	buf   []byte
	dirty bool
}

// NewSurface allocates the visual mapping for a w*h grid and paints every cell
// dead.
func NewSurface(w, h, cellSize int, pal Palette) *Surface {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	s := &Surface{
		w:        w,
		h:        h,
		cellSize: cellSize,
		pal:      pal,
		rects:    make([]image.Rectangle, w*h),
		alive:    make([]bool, w*h),
		buf:      make([]byte, 4*w*cellSize*h*cellSize),
		dirty:    true,
	}
	pw := s.PixelWidth()
	inset := 0
	if cellSize >= 3 {
		inset = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			outer := image.Rect(x*cellSize, y*cellSize, (x+1)*cellSize, (y+1)*cellSize)
			inner := image.Rect(outer.Min.X+inset, outer.Min.Y+inset, outer.Max.X, outer.Max.Y)
			s.rects[y*w+x] = inner
			if inset > 0 {
				fillRect(s.buf, pw, outer, pal.Gridline)
			}
			fillRect(s.buf, pw, inner, pal.Background)
		}
	}
	return s
}

// Size returns the grid dimensions covered by the surface.
func (s *Surface) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// CellSize returns the edge length of a cell in pixels.
func (s *Surface) CellSize() int { return s.cellSize }

// PixelWidth returns the width of the surface in pixels.
func (s *Surface) PixelWidth() int { return s.w * s.cellSize }

// PixelHeight returns the height of the surface in pixels.
func (s *Surface) PixelHeight() int { return s.h * s.cellSize }

// Palette returns the colors the surface was built with.
func (s *Surface) Palette() Palette { return s.pal }

// SetCell repaints the interior of the cell at (x, y). Coordinates outside the
// grid are ignored.
func (s *Surface) SetCell(x, y int, alive bool) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	idx := y*s.w + x
	s.alive[idx] = alive
	fillRect(s.buf, s.PixelWidth(), s.rects[idx], s.pal.Cell(alive))
	s.dirty = true
}

// AliveAt reports the state the cell at (x, y) was last painted with.
func (s *Surface) AliveAt(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	return s.alive[y*s.w+x]
}

// PixelToCell maps a pixel position to grid coordinates. ok is false when the
// pixel lies outside the grid.
func (s *Surface) PixelToCell(px, py int) (x, y int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/s.cellSize, py/s.cellSize
	if x >= s.w || y >= s.h {
		return 0, 0, false
	}
	return x, y, true
}

// Pixels exposes the RGBA buffer, PixelWidth*PixelHeight*4 bytes long.
func (s *Surface) Pixels() []byte { return s.buf }

// Dirty reports whether any cell was repainted since the last MarkClean.
func (s *Surface) Dirty() bool { return s.dirty }

// MarkClean records that the buffer has been uploaded.
func (s *Surface) MarkClean() { s.dirty = false }

// DiffRedraw repaints every cell whose state differs between old and cur and
// returns how many cells were repainted. Grids of different dimensions are
// ignored.
func DiffRedraw(p CellPainter, old, cur *core.Grid) int {
	if old == nil || cur == nil || old.W != cur.W || old.H != cur.H {
		return 0
	}
	prev, next := old.Cells(), cur.Cells()
	n := 0
	for i := range next {
		if prev[i] == next[i] {
			continue
		}
		p.SetCell(i%cur.W, i/cur.W, next[i] == core.Alive)
		n++
	}
	return n
}

// Redraw repaints every cell of g.
func Redraw(p CellPainter, g *core.Grid) {
	cells := g.Cells()
	for i, c := range cells {
		p.SetCell(i%g.W, i/g.W, c == core.Alive)
	}
}

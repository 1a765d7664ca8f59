package render

import (
	"testing"

	"lifesim/internal/config"
	"lifesim/internal/core"
)

type countingPainter struct {
	calls map[[2]int]bool
}

func (c *countingPainter) SetCell(x, y int, alive bool) {
	if c.calls == nil {
		c.calls = map[[2]int]bool{}
	}
	c.calls[[2]int{x, y}] = alive
}

func TestDiffRedrawMatchesHammingDistance(t *testing.T) {
	old := core.NewGrid(6, 4)
	cur := core.NewGrid(6, 4)
	old.Set(0, 0, true)
	old.Set(2, 1, true)
	cur.Set(2, 1, true)
	cur.Set(5, 3, true)
	cur.Set(4, 0, true)

	hamming := 0
	for i := range old.Cells() {
		if old.Cells()[i] != cur.Cells()[i] {
			hamming++
		}
	}

	p := &countingPainter{}
	n := DiffRedraw(p, old, cur)
	if n != hamming || len(p.calls) != hamming {
		t.Fatalf("DiffRedraw repainted %d cells (%d distinct), expected %d", n, len(p.calls), hamming)
	}
	expects := map[[2]int]bool{{0, 0}: false, {5, 3}: true, {4, 0}: true}
	for pos, alive := range expects {
		got, ok := p.calls[pos]
		if !ok || got != alive {
			t.Fatalf("cell %v painted=%v alive=%v, expected alive=%v", pos, ok, got, alive)
		}
	}
	if _, ok := p.calls[[2]int{2, 1}]; ok {
		t.Fatal("unchanged cell (2,1) was repainted")
	}
}

func TestDiffRedrawIdenticalGrids(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(1, 1, true)
	p := &countingPainter{}
	if n := DiffRedraw(p, g, g.Clone()); n != 0 || len(p.calls) != 0 {
		t.Fatalf("identical grids caused %d repaints", n)
	}
	if n := DiffRedraw(p, g, core.NewGrid(3, 4)); n != 0 {
		t.Fatalf("mismatched grids caused %d repaints", n)
	}
}

func TestPixelToCell(t *testing.T) {
	s := NewSurface(5, 3, 20, PaletteFor(config.ThemeLight))
	cases := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{19, 19, 0, 0, true},
		{20, 0, 1, 0, true},
		{99, 59, 4, 2, true},
		{100, 0, 0, 0, false},
		{0, 60, 0, 0, false},
		{-1, 5, 0, 0, false},
		{5, -20, 0, 0, false},
	}
	for _, c := range cases {
		x, y, ok := s.PixelToCell(c.px, c.py)
		if ok != c.ok || (ok && (x != c.x || y != c.y)) {
			t.Fatalf("PixelToCell(%d,%d) = (%d,%d,%v), expected (%d,%d,%v)", c.px, c.py, x, y, ok, c.x, c.y, c.ok)
		}
	}
}

func pixelAt(s *Surface, px, py int) [4]byte {
	i := (py*s.PixelWidth() + px) * 4
	b := s.Pixels()
	return [4]byte{b[i], b[i+1], b[i+2], b[i+3]}
}

func rgba(c interface{ RGBA() (r, g, b, a uint32) }) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)}
}

func TestSetCellPaintsOnlyItsInterior(t *testing.T) {
	pal := PaletteFor(config.ThemeDark)
	s := NewSurface(3, 2, 10, pal)
	if len(s.Pixels()) != 30*20*4 {
		t.Fatalf("buffer has %d bytes, expected %d", len(s.Pixels()), 30*20*4)
	}
	if got := pixelAt(s, 10, 10); got != rgba(pal.Gridline) {
		t.Fatalf("cell corner pixel = %v, expected gridline", got)
	}
	if got := pixelAt(s, 15, 15); got != rgba(pal.Background) {
		t.Fatalf("cell interior = %v, expected background", got)
	}

	s.MarkClean()
	s.SetCell(1, 1, true)
	if !s.Dirty() || !s.AliveAt(1, 1) {
		t.Fatal("SetCell did not mark the surface dirty or record the state")
	}
	if got := pixelAt(s, 15, 15); got != rgba(pal.Foreground) {
		t.Fatalf("cell interior after SetCell = %v, expected foreground", got)
	}
	if got := pixelAt(s, 10, 10); got != rgba(pal.Gridline) {
		t.Fatal("SetCell painted over the gridline")
	}
	if got := pixelAt(s, 25, 15); got != rgba(pal.Background) {
		t.Fatal("SetCell painted a neighboring cell")
	}

	s.MarkClean()
	s.SetCell(3, 0, true)
	s.SetCell(0, -1, true)
	if s.Dirty() {
		t.Fatal("out-of-range SetCell touched the surface")
	}
}

func TestPaletteFor(t *testing.T) {
	light := PaletteFor(config.ThemeLight)
	dark := PaletteFor(config.ThemeDark)
	if light.Background != dark.Foreground || light.Foreground != dark.Background {
		t.Fatal("light and dark palettes should invert background and foreground")
	}
	if PaletteFor("solarized") != light {
		t.Fatal("unknown theme should resolve to light")
	}
	if light.Cell(true) != light.Foreground || light.Cell(false) != light.Background {
		t.Fatal("Cell picked the wrong color")
	}
}

func TestRedrawPaintsEveryCell(t *testing.T) {
	g := core.NewGrid(4, 3)
	g.Set(1, 2, true)
	p := &countingPainter{}
	Redraw(p, g)
	if len(p.calls) != 12 {
		t.Fatalf("Redraw painted %d cells, expected 12", len(p.calls))
	}
	if !p.calls[[2]int{1, 2}] {
		t.Fatal("Redraw painted live cell as dead")
	}
}

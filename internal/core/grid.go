package core

// Cell states stored in a Grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Grid is a row-major board of cell states. Coordinates passed to Alive wrap
// around both edges; Set ignores coordinates outside the grid.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-dead grid. Dimensions below 1 are raised to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, Size{W: w, H: h}.Area())}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the slice index of (x, y). The coordinates must be in bounds.
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Wrap maps any coordinates onto the torus.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Alive reports whether the cell at the wrapped coordinates is alive.
func (g *Grid) Alive(x, y int) bool {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)] == Alive
}

// Set stores a cell state.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	v := Dead
	if alive {
		v = Alive
	}
	g.data[g.Index(x, y)] = v
}

// LiveNeighbors counts the live cells among the eight wrapped neighbors of
// (x, y).
func (g *Grid) LiveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && g.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// SameSize reports whether o has the same dimensions as g.
func (g *Grid) SameSize(o *Grid) bool { return g.W == o.W && g.H == o.H }

// CopyFrom overwrites g with the contents of src. It reports false and leaves
// g untouched when the dimensions differ.
func (g *Grid) CopyFrom(src *Grid) bool {
	if !g.SameSize(src) {
		return false
	}
	copy(g.data, src.data)
	return true
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]uint8, g.Size().Area())}
	copy(c.data, g.data)
	return c
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

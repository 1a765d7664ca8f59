// Package life implements Conway's Game of Life on a toroidal grid.
package life

import "lifesim/internal/core"

// Next computes one generation of src into dst and reports whether it did.
// src is only read, so neighbor counts always see the previous generation.
// Grids of different sizes are rejected and dst is left as it was.
func Next(dst, src *core.Grid) bool {
	if !dst.SameSize(src) {
		return false
	}
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			n := src.LiveNeighbors(x, y)
			dst.Set(x, y, n == 3 || (n == 2 && src.Alive(x, y)))
		}
	}
	return true
}

// Life owns the live grid plus a spare buffer used while stepping.
type Life struct {
	cur, nxt   *core.Grid
	generation int
}

// New returns an all-dead Life board with the provided dimensions.
func New(w, h int) *Life {
	cur := core.NewGrid(w, h)
	return &Life{cur: cur, nxt: core.NewGrid(cur.W, cur.H)}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid exposes the current generation. The returned grid is replaced, not
// mutated, by Step, so callers must not hold on to it across steps.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation returns the number of steps since construction or the last Clear.
func (l *Life) Generation() int { return l.generation }

// Population counts live cells in the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	Next(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	l.cur.Clear()
	l.generation = 0
}

// Toggle flips the cell at (x, y). It reports false and leaves the board
// untouched when the coordinates fall outside the grid.
func (l *Life) Toggle(x, y int) bool {
	if !l.cur.InBounds(x, y) {
		return false
	}
	idx := l.cur.Index(x, y)
	l.cur.Cells()[idx] ^= core.Alive
	return true
}

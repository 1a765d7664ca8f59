package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lifesim/internal/render"
)

const (
	aliveGlyph = "██"
	deadGlyph  = "· "
)

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Canvas is the terminal render surface: two columns per cell, rows cached
// as styled strings and rebuilt only when one of their cells changed.
type Canvas struct {
	w, h  int
	alive []bool
	rows  []string
	dirty []bool

	aliveStyle lipgloss.Style
	deadStyle  lipgloss.Style
}

// NewCanvas builds an all-dead canvas colored with pal.
func NewCanvas(w, h int, pal render.Palette) *Canvas {
	c := &Canvas{
		w:          w,
		h:          h,
		alive:      make([]bool, w*h),
		rows:       make([]string, h),
		dirty:      make([]bool, h),
		aliveStyle: lipgloss.NewStyle().Foreground(hex(pal.Foreground)).Background(hex(pal.Background)),
		deadStyle:  lipgloss.NewStyle().Foreground(hex(pal.Gridline)).Background(hex(pal.Background)),
	}
	for y := range c.dirty {
		c.dirty[y] = true
	}
	return c
}

// SetCell records the state of one cell and invalidates its row.
func (c *Canvas) SetCell(x, y int, alive bool) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.alive[y*c.w+x] = alive
	c.dirty[y] = true
}

// Row returns the rendered row y, clipped to cols cells.
func (c *Canvas) Row(y, cols int) string {
	if c.dirty[y] {
		c.rows[y] = c.renderRow(y)
		c.dirty[y] = false
	}
	if cols >= c.w {
		return c.rows[y]
	}
	return c.spanRange(y, 0, cols)
}

// View renders up to rows*cols cells.
func (c *Canvas) View(rows, cols int) string {
	if rows > c.h {
		rows = c.h
	}
	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		lines[y] = c.Row(y, cols)
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) renderRow(y int) string { return c.spanRange(y, 0, c.w) }

// spanRange renders cells [from, to) of row y, styling runs of equal cells
// together so a row costs a handful of escape sequences instead of one per
// cell.
func (c *Canvas) spanRange(y, from, to int) string {
	var b strings.Builder
	row := c.alive[y*c.w+from : y*c.w+to]
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i] == row[start] {
			continue
		}
		glyph, style := deadGlyph, c.deadStyle
		if row[start] {
			glyph, style = aliveGlyph, c.aliveStyle
		}
		b.WriteString(style.Render(strings.Repeat(glyph, i-start)))
		start = i
	}
	return b.String()
}

// CellAt maps a terminal position inside the canvas to grid coordinates.
func (c *Canvas) CellAt(col, row int) (x, y int, ok bool) {
	if col < 0 || row < 0 {
		return 0, 0, false
	}
	x, y = col/2, row
	if x >= c.w || y >= c.h {
		return 0, 0, false
	}
	return x, y, true
}

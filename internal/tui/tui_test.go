package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifesim/internal/config"
	"lifesim/internal/render"
	"lifesim/internal/sim"
)

func runBoard(t *testing.T, w, h int) *sim.Board {
	t.Helper()
	b := sim.NewBoard(w, h)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		b.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return b
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func settle(t *testing.T, b *sim.Board) {
	t.Helper()
	if _, err := b.Snapshot(); err != nil {
		t.Fatal(err)
	}
}

func TestCanvasRowsFollowSetCell(t *testing.T) {
	c := NewCanvas(4, 2, render.PaletteFor(config.ThemeLight))
	c.SetCell(1, 0, true)
	c.SetCell(2, 0, true)
	c.SetCell(9, 9, true)

	row := c.Row(0, 4)
	if strings.Count(row, aliveGlyph) != 2 || strings.Count(row, deadGlyph) != 2 {
		t.Fatalf("row 0 = %q, expected two live and two dead cells", row)
	}
	if strings.Index(row, deadGlyph) > strings.Index(row, aliveGlyph) {
		t.Fatalf("row 0 = %q, expected a dead cell first", row)
	}
	if strings.Contains(c.Row(1, 4), aliveGlyph) {
		t.Fatal("row 1 shows a live cell")
	}
	if clipped := c.Row(0, 2); strings.Count(clipped, aliveGlyph) != 1 || strings.Count(clipped, deadGlyph) != 1 {
		t.Fatalf("clipped row = %q, expected two cells", clipped)
	}

	c.SetCell(1, 0, false)
	if strings.Count(c.Row(0, 4), aliveGlyph) != 1 {
		t.Fatal("cached row was not rebuilt after SetCell")
	}
}

func TestCanvasCellAt(t *testing.T) {
	c := NewCanvas(3, 2, render.PaletteFor(config.ThemeDark))
	if x, y, ok := c.CellAt(5, 1); !ok || x != 2 || y != 1 {
		t.Fatalf("CellAt(5,1) = %d,%d,%v", x, y, ok)
	}
	for _, p := range [][2]int{{6, 0}, {0, 2}, {-1, 0}} {
		if _, _, ok := c.CellAt(p[0], p[1]); ok {
			t.Fatalf("CellAt(%d,%d) should be outside the canvas", p[0], p[1])
		}
	}
}

func TestModelClickTogglesAndTickApplies(t *testing.T) {
	b := runBoard(t, 5, 5)
	m := NewModel(b, config.Default())

	m = update(t, m, tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	settle(t, b)
	m = update(t, m, tickMsg(time.Now()))

	if !m.canvas.alive[1*5+2] {
		t.Fatal("click at column 4 row 1 did not toggle cell (2,1)")
	}
	if st := b.Stats(); st.Population != 1 {
		t.Fatalf("population = %d, expected 1", st.Population)
	}
	if !strings.Contains(m.View(), "pop 1") {
		t.Fatalf("status does not show the population:\n%s", m.View())
	}
}

func TestModelKeys(t *testing.T) {
	b := runBoard(t, 4, 4)
	m := NewModel(b, config.Default())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursorX != 3 || m.cursorY != 3 {
		t.Fatalf("cursor = (%d,%d), expected wrap to (3,3)", m.cursorX, m.cursorY)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	settle(t, b)
	if b.Stats().Population != 1 {
		t.Fatal("enter did not toggle the cell under the cursor")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	settle(t, b)
	if b.Stats().Population != 0 {
		t.Fatal("c did not clear the board")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if m.driver.Speed() != config.Default().Speed+1 {
		t.Fatalf("speed = %d after +", m.driver.Speed())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.driver.Running() {
		t.Fatal("space did not start the driver")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if m.driver.Running() {
		t.Fatal("q left the driver running")
	}
	if cmd == nil {
		t.Fatal("q did not return a quit command")
	}
}

func TestModelHistoryTracksGenerations(t *testing.T) {
	b := runBoard(t, 5, 5)
	b.Toggle(2, 1)
	b.Toggle(2, 2)
	b.Toggle(2, 3)
	m := NewModel(b, config.Default())
	m = update(t, m, tickMsg(time.Now()))
	for i := 0; i < 3; i++ {
		if err := b.Step(); err != nil {
			t.Fatal(err)
		}
		m = update(t, m, tickMsg(time.Now()))
	}
	if len(m.history) != 4 {
		t.Fatalf("history has %d samples, expected 4", len(m.history))
	}
	if !strings.Contains(m.View(), "population") {
		t.Fatal("view does not include the population graph")
	}
}

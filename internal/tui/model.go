// Package tui is a terminal front end for the simulator built on bubbletea.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"lifesim/internal/config"
	"lifesim/internal/render"
	"lifesim/internal/sim"
)

const (
	frameRate       = 30
	historyCapacity = 120
	statusLines     = 7
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	runStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	stopStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model drives a Board from the terminal. Cell changes are applied to the
// canvas only from Update, on the bubbletea goroutine.
type Model struct {
	board  *sim.Board
	driver *sim.Driver
	canvas *Canvas

	cursorX, cursorY int
	width, height    int
	history          []float64
	lastGen          int
}

// NewModel wires a model to a running board.
func NewModel(board *sim.Board, s config.Settings) Model {
	size := board.Size()
	return Model{
		board:  board,
		driver: sim.NewDriver(board, s.Speed),
		canvas: NewCanvas(size.W, size.H, render.PaletteFor(s.Theme)),
		width:  2 * size.W,
		height: size.H + statusLines,
	}
}

// Driver exposes the pacing loop, mainly so callers can stop it on exit.
func (m Model) Driver() *sim.Driver { return m.driver }

func (m Model) Init() tea.Cmd { return tick() }

// Update handles input events and drains board changes on every tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m = m.sync()
		return m, tick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if x, y, ok := m.canvas.CellAt(msg.X, msg.Y); ok {
				m.cursorX, m.cursorY = x, y
				m.board.Toggle(x, y)
			}
		}
	case tea.KeyMsg:
		return m.key(msg)
	}
	return m, nil
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := m.board.Size()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.driver.Stop()
		return m, tea.Quit
	case " ", "s":
		m.driver.Toggle()
	case "c":
		m.board.Clear()
	case "n":
		if !m.driver.Running() {
			m.board.Advance()
		}
	case "+", "=":
		m.driver.SetSpeed(m.driver.Speed() + 1)
	case "-":
		m.driver.SetSpeed(m.driver.Speed() - 1)
	case "up", "k":
		m.cursorY = (m.cursorY + size.H - 1) % size.H
	case "down", "j":
		m.cursorY = (m.cursorY + 1) % size.H
	case "left", "h":
		m.cursorX = (m.cursorX + size.W - 1) % size.W
	case "right", "l":
		m.cursorX = (m.cursorX + 1) % size.W
	case "enter", "t":
		m.board.Toggle(m.cursorX, m.cursorY)
	}
	return m, nil
}

// sync applies pending flips and records the population once per generation.
func (m Model) sync() Model {
	sim.Apply(m.canvas, m.board.Changes())
	st := m.board.Stats()
	if st.Generation != m.lastGen || len(m.history) == 0 {
		m.lastGen = st.Generation
		m.history = append(m.history, float64(st.Population))
		if len(m.history) > historyCapacity {
			m.history = m.history[len(m.history)-historyCapacity:]
		}
	}
	return m
}

func (m Model) View() string {
	rows := m.height - statusLines
	if rows < 1 {
		rows = 1
	}
	cols := m.width / 2
	size := m.board.Size()

	lines := strings.Split(m.canvas.View(rows, cols), "\n")
	if m.cursorY < len(lines) && m.cursorX < cols && !m.driver.Running() {
		lines[m.cursorY] = m.withCursor(cols)
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	if len(m.history) >= 2 {
		width := cols * 2
		if width > 60 || width <= 0 {
			width = 60
		}
		b.WriteString(graphStyle.Render(asciigraph.Plot(m.history, asciigraph.Height(3), asciigraph.Width(width), asciigraph.Caption("population"))))
		b.WriteString("\n")
	}
	if rows < size.H || cols < size.W {
		b.WriteString(helpStyle.Render(fmt.Sprintf("showing %dx%d of %dx%d", min(cols, size.W), min(rows, size.H), size.W, size.H)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("space start/stop  c clear  n step  +/- speed  arrows+enter or click toggle  q quit"))
	return b.String()
}

func (m Model) status() string {
	st := m.board.Stats()
	state := stopStyle.Render("stopped")
	if m.driver.Running() {
		state = runStyle.Render("running")
	}
	return statusStyle.Render(fmt.Sprintf("gen %d  pop %d  %d gen/s  ", st.Generation, st.Population, m.driver.Speed())) + state
}

// withCursor re-renders the cursor row with the cursor cell highlighted.
func (m Model) withCursor(cols int) string {
	c := m.canvas
	glyph := deadGlyph
	if c.alive[m.cursorY*c.w+m.cursorX] {
		glyph = aliveGlyph
	}
	var b strings.Builder
	if m.cursorX > 0 {
		b.WriteString(c.spanRange(m.cursorY, 0, m.cursorX))
	}
	b.WriteString(cursorStyle.Render(glyph))
	if end := min(cols, c.w); m.cursorX+1 < end {
		b.WriteString(c.spanRange(m.cursorY, m.cursorX+1, end))
	}
	return b.String()
}

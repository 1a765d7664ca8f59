//go:build ebiten

package app

import (
	"fmt"
	"image"

	"lifesim/internal/config"
	"lifesim/internal/render"
	"lifesim/internal/sim"
	"lifesim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	buttonStart = iota
	buttonStop
	buttonClear
)

// statusWidth reserves room for the status text right of the buttons.
const statusWidth = 250

// lifeScene shows the grid above a Start/Stop/Clear bar. Only this scene's
// Update touches the surface; flips computed on the board goroutine arrive
// through Board.Changes.
type lifeScene struct {
	board   *sim.Board
	driver  *sim.Driver
	surface *render.Surface
	painter *render.Painter
	style   ui.Style

	buttons []ui.Button
	status  string
}

func newLifeScene(g *Game, s config.Settings) *lifeScene {
	board := sim.NewBoard(s.Cols(), s.Rows())
	g.launch(board.Run)

	surface := render.NewSurface(s.Cols(), s.Rows(), s.CellSize, render.PaletteFor(s.Theme))
	return &lifeScene{
		board:   board,
		driver:  sim.NewDriver(board, s.Speed),
		surface: surface,
		painter: render.NewPainter(surface),
		style:   ui.StyleFor(s.Theme),
		buttons: ui.ButtonBar([]string{"Start", "Stop", "Clear"}, surface.PixelHeight()),
	}
}

func (l *lifeScene) Size() (int, int) {
	w := l.surface.PixelWidth()
	if last := l.buttons[len(l.buttons)-1].Rect.Max.X + 16 + statusWidth; last > w {
		w = last
	}
	return w, l.surface.PixelHeight() + ui.BarHeight
}

func (l *lifeScene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		l.driver.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		l.board.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !l.driver.Running() {
		l.board.Advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		l.driver.SetSpeed(l.driver.Speed() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		l.driver.SetSpeed(l.driver.Speed() - 1)
	}

	if x, y, ok := clicked(); ok {
		l.click(x, y)
	}

	sim.Apply(l.surface, l.board.Changes())

	running := l.driver.Running()
	l.buttons[buttonStart].Enabled = !running
	l.buttons[buttonStop].Enabled = running

	st := l.board.Stats()
	state := "stopped"
	if running {
		state = "running"
	}
	l.status = fmt.Sprintf("gen %d  pop %d  %d gen/s  %s", st.Generation, st.Population, l.driver.Speed(), state)
	return nil
}

func (l *lifeScene) click(x, y int) {
	switch {
	case l.buttons[buttonStart].Hit(x, y):
		l.driver.Start()
	case l.buttons[buttonStop].Hit(x, y):
		l.driver.Stop()
	case l.buttons[buttonClear].Hit(x, y):
		l.board.Clear()
	default:
		if cx, cy, ok := l.surface.PixelToCell(x, y); ok {
			l.board.Toggle(cx, cy)
		}
	}
}

func (l *lifeScene) Draw(screen *ebiten.Image) {
	screen.Fill(l.surface.Palette().Background)
	l.painter.Blit(screen)

	w, h := l.Size()
	bar := image.Rect(0, l.surface.PixelHeight(), w, h)
	ui.DrawPanel(screen, bar, l.style)
	for _, b := range l.buttons {
		ui.DrawButton(screen, b, l.style)
	}
	last := l.buttons[len(l.buttons)-1].Rect
	ui.DrawLabel(screen, l.status, last.Max.X+16, last.Min.Y+19, l.style.Muted)
}

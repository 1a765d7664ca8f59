//go:build ebiten

// Package app is the ebiten front end: a startup dialog scene followed by the
// simulation scene, sharing one window.
package app

import (
	"context"

	"lifesim/internal/config"
	"lifesim/internal/dialog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Launcher runs a long-lived task, such as a board goroutine, for the
// lifetime of the application.
type Launcher func(run func(ctx context.Context) error)

type scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Size() (int, int)
}

// Game adapts the scenes to the ebiten.Game interface.
type Game struct {
	store  *config.Store
	msgs   dialog.Messages
	launch Launcher
	scene  scene
}

// New constructs a Game that opens on the startup dialog seeded with s.
func New(store *config.Store, s config.Settings, msgs dialog.Messages, launch Launcher) *Game {
	g := &Game{store: store, msgs: msgs, launch: launch}
	g.show(newStartScene(g, s))
	ebiten.SetWindowTitle(msgs.StartTitle)
	return g
}

func (g *Game) show(sc scene) {
	g.scene = sc
	w, h := sc.Size()
	ebiten.SetWindowSize(w, h)
}

// start is the dialog's launch callback.
func (g *Game) start(s config.Settings) {
	ebiten.SetWindowTitle(g.msgs.MainTitle)
	g.show(newLifeScene(g, s))
}

// Update handles per-frame logic for the active scene.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return g.scene.Update()
}

// Draw renders the active scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout returns the logical screen size of the active scene.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Size()
}

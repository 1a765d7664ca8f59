//go:build ebiten

package main

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"lifesim/internal/app"
	"lifesim/internal/config"
	"lifesim/internal/dialog"
)

// runGUI owns the main goroutine for ebiten. Board goroutines started by the
// game live in an errgroup that is cancelled when the window closes.
func runGUI(ctx context.Context, store *config.Store, s config.Settings) error {
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)

	launch := func(run func(context.Context) error) {
		g.Go(func() error { return run(ctx) })
	}

	game := app.New(store, s, dialog.Polish, launch)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(game)
	cancel()
	if werr := g.Wait(); err == nil {
		err = werr
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

//go:build !ebiten

package main

import (
	"context"
	"fmt"
	"os"

	"lifesim/internal/config"
)

func runGUI(context.Context, *config.Store, config.Settings) error {
	fmt.Fprintln(os.Stderr, "The GUI build of lifesim requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/lifesim` or use `lifesim tui`.")
	os.Exit(2)
	return nil
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"lifesim/internal/config"
	"lifesim/internal/sim"
	"lifesim/internal/tui"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "lifesim",
		Short: "Conway's Game of Life on a toroidal grid",
		Long: "lifesim opens a settings dialog and then an editable Game of Life board.\n" +
			"Settings are kept in a JSON file between runs.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := config.NewStore(configPath)
			settings, err := store.Load()
			if err != nil {
				return err
			}
			return runGUI(cmd.Context(), store, settings)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "settings file path")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the simulation in the terminal with the stored settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.NewStore(configPath).Load()
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), settings)
		},
	}
	rootCmd.AddCommand(tuiCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// runTUI runs the board goroutine next to the terminal program and stops the
// board once the program exits.
func runTUI(ctx context.Context, s config.Settings) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	board := sim.NewBoard(s.Cols(), s.Rows())
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return board.Run(ctx) })
	g.Go(func() error {
		defer cancel()
		return tui.Run(ctx, board, s)
	})
	return g.Wait()
}

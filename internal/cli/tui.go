package cli

import (
	"time"

	"github.com/spf13/cobra"

	"spanmaze/internal/tui"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Reveal a spanning tree in the terminal",
		Long:  `Reveal a spanning tree cell by cell in the terminal. Keys: q quit, space pause, n step, r replay, enter reveal all.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			tree, grid, seed, err := buildMaze(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), tree, grid, tui.Options{
				Scheme:   cfg.Palette(),
				Buckets:  cfg.Buckets,
				PerTick:  cfg.EdgesPerStep,
				Interval: time.Second / time.Duration(cfg.StepsPerSecond),
				Seed:     seed,
			}, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

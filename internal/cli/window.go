package cli

import (
	"github.com/spf13/cobra"

	"spanmaze/internal/app"
	"spanmaze/internal/core"
)

func newWindowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Reveal a spanning tree in a window",
		Long: `Reveal a spanning tree in an ebiten window. Requires a build with -tags ebiten.

Keys: Q/Esc quit, Space pause, N step, R replay, S new seed, Enter reveal all, H toggle status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			seed := core.ResolveSeed(opts.cfg.Seed)
			logger.Info("opening window", "seed", seed, "width", opts.cfg.Width, "height", opts.cfg.Height)
			return app.Run(ctx, opts.cfg, seed, logger)
		},
	}
}

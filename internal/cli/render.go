package cli

import (
	"github.com/spf13/cobra"

	"spanmaze/internal/render"
	"spanmaze/internal/reveal"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		out    string
		frames string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Reveal a spanning tree into PNG files",
		Long: `Reveal a spanning tree into a framebuffer and save the final image.

With --frames, the framebuffer is also written after every batch of
--edges-per-step edges, giving a numbered PNG sequence of the reveal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := opts.cfg

			tree, _, _, err := buildMaze(ctx, cfg)
			if err != nil {
				return err
			}
			fb := render.NewFramebuffer(cfg.Width, cfg.Height)
			r := reveal.New(tree, fb, revealOptions(cfg))

			prog := newProgress(logger)
			if frames != "" {
				seq := render.NewPNGSequence(frames)
				if err := reveal.Run(ctx, r, seq, cfg.EdgesPerStep); err != nil {
					return err
				}
				prog.done("wrote frames", "dir", frames, "frames", seq.Frames())
			} else {
				r.DrawAll()
			}

			if err := render.SavePNG(out, fb); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printSuccess(w, "rendered %d edges", len(tree))
			printFile(w, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "maze.png", "output PNG path")
	cmd.Flags().StringVar(&frames, "frames", "", "directory for one PNG per reveal batch")
	return cmd
}

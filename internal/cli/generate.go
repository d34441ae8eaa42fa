package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"spanmaze/internal/maze"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var noASCII bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a spanning tree as an ASCII maze",
		Long:  `Build a spanning tree for the configured grid and print it as a walled maze, followed by counts of dead ends, corridors and junctions.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, grid, seed, err := buildMaze(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !noASCII {
				fmt.Fprint(out, tree.ASCII(grid))
			}
			printSummary(out, seed, maze.Summarize(tree, grid))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noASCII, "no-ascii", false, "print statistics only")
	return cmd
}

func printSummary(w io.Writer, seed int64, s maze.Stats) {
	printTitle(w, "spanning tree")
	printKeyValue(w, "seed", fmt.Sprint(seed))
	printKeyValue(w, "corridors", fmt.Sprint(s.Corridors))
	printKeyValue(w, "dead ends", fmt.Sprintf("%.1f%%", 100*s.DeadEndRatio()))
	printStats(w, s.Cells, s.Edges, s.DeadEnds, s.Junctions)
}

package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"spanmaze/internal/core"
	"spanmaze/internal/maze"
)

type sweepResult struct {
	seed  int64
	stats maze.Stats
}

func newSweepCmd(opts *rootOptions) *cobra.Command {
	var (
		from    int64
		count   int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Build many seeds and summarise their shape",
		Long:  `Build one spanning tree per seed in [from, from+seeds) on a bounded worker pool and report aggregate dead-end, corridor and junction counts.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			if count <= 0 {
				return fmt.Errorf("sweep: --seeds must be positive, got %d", count)
			}
			grid, err := opts.cfg.Grid()
			if err != nil {
				return err
			}
			logger.Info("sweeping", "seeds", count, "workers", workers, "rows", grid.Rows, "cols", grid.Cols)

			prog := newProgress(logger)
			results, err := sweepSeeds(ctx, grid, from, count, workers)
			if err != nil {
				return err
			}
			prog.done("sweep finished", "seeds", count)

			var total maze.Stats
			lo, hi := results[0], results[0]
			for _, r := range results {
				total.Add(r.stats)
				if r.stats.DeadEnds < lo.stats.DeadEnds {
					lo = r
				}
				if r.stats.DeadEnds > hi.stats.DeadEnds {
					hi = r
				}
			}

			w := cmd.OutOrStdout()
			printTitle(w, "sweep of %d seeds", count)
			printKeyValue(w, "dead ends", fmt.Sprintf("%.2f%%", 100*total.DeadEndRatio()))
			printKeyValue(w, "fewest", fmt.Sprintf("seed %d (%d)", lo.seed, lo.stats.DeadEnds))
			printKeyValue(w, "most", fmt.Sprintf("seed %d (%d)", hi.seed, hi.stats.DeadEnds))
			printStats(w, total.Cells, total.Edges, total.DeadEnds, total.Junctions)
			return nil
		},
	}

	cmd.Flags().Int64Var(&from, "from", 1, "first seed")
	cmd.Flags().IntVar(&count, "seeds", 64, "number of seeds")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of worker goroutines")
	return cmd
}

// sweepSeeds builds one tree per seed in [from, from+count) with at most
// workers builds in flight. Results are returned in seed order.
func sweepSeeds(ctx context.Context, grid core.Grid, from int64, count, workers int) ([]sweepResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]sweepResult, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < count && gctx.Err() == nil; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seed := from + int64(i)
			tree, err := maze.BuildSeeded(grid, seed)
			if err != nil {
				return err
			}
			results[i] = sweepResult{seed: seed, stats: maze.Summarize(tree, grid)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

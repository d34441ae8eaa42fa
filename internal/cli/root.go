package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"spanmaze/internal/config"
	"spanmaze/internal/core"
	"spanmaze/internal/maze"
	"spanmaze/internal/reveal"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. main
// calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOptions holds what the persistent flags resolve to.
type rootOptions struct {
	cfg        *config.Config
	configPath string
	verbose    bool
}

// Execute runs the spanmaze CLI with ctx as the root context.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Configuration is resolved before any
// subcommand runs: defaults, then --config, then SPANMAZE_* variables, then
// flags given on the command line.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.NewConfig()}

	root := &cobra.Command{
		Use:           "spanmaze",
		Short:         "spanmaze draws randomized spanning trees of a grid",
		Long:          `spanmaze builds a uniform-shuffle depth-first spanning tree over a grid of cells and reveals it edge by edge, colouring each edge by the order in which it was discovered.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			if err := opts.cfg.Resolve(cmd.Flags(), opts.configPath); err != nil {
				return err
			}
			logger.Debug("resolved config", "width", opts.cfg.Width, "height", opts.cfg.Height,
				"cell", opts.cfg.CellSize, "scheme", opts.cfg.Scheme)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("spanmaze %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&opts.configPath, "config", "c", "", "TOML file with config values")
	opts.cfg.Bind(pf)

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newWindowCmd(opts))
	root.AddCommand(newSweepCmd(opts))

	return root
}

// buildMaze builds the spanning tree the configuration describes. A zero
// seed is replaced by a fresh one, which is logged so the run can be
// repeated.
func buildMaze(ctx context.Context, cfg *config.Config) (maze.Tree, core.Grid, int64, error) {
	logger := loggerFromContext(ctx)
	grid, err := cfg.Grid()
	if err != nil {
		return nil, core.Grid{}, 0, err
	}
	seed := core.ResolveSeed(cfg.Seed)
	if seed != cfg.Seed {
		logger.Info("picked seed", "seed", seed)
	}

	prog := newProgress(logger)
	tree, err := maze.BuildSeeded(grid, seed)
	if err != nil {
		return nil, core.Grid{}, 0, err
	}
	prog.done("built spanning tree", "seed", seed, "rows", grid.Rows, "cols", grid.Cols, "edges", len(tree))
	return tree, grid, seed, nil
}

func revealOptions(cfg *config.Config) reveal.Options {
	return reveal.Options{
		CellSize:   cfg.CellSize,
		Scheme:     cfg.Palette(),
		Buckets:    cfg.Buckets,
		Background: cfg.BackgroundPixel(),
	}
}

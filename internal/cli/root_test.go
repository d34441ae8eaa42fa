package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spanmaze/internal/config"
	"spanmaze/internal/core"
	"spanmaze/internal/maze"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	t.Cleanup(func() { SetVersion("", "", "") })
	if version != "1.0.0" || commit != "abc123" || date != "2024-01-01" {
		t.Errorf("SetVersion did not store values: %q %q %q", version, commit, date)
	}
}

func TestGeneratePrintsMaze(t *testing.T) {
	out, logs, err := run(t, "generate", "--width=30", "--height=20", "--seed=1")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "+---+---+---+", lines[0])
	assert.Equal(t, "+---+---+---+", lines[4])
	assert.Contains(t, out, "spanning tree")
	assert.Contains(t, out, "5 edges")
	assert.Contains(t, logs, "built spanning tree")
	assert.Contains(t, logs, "seed=1")
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, _, err := run(t, "generate", "--width=120", "--height=80", "--seed=9")
	require.NoError(t, err)
	b, _, err := run(t, "generate", "--width=120", "--height=80", "--seed=9")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGeneratePicksSeed(t *testing.T) {
	_, logs, err := run(t, "generate", "--no-ascii", "--width=20", "--height=20")
	require.NoError(t, err)
	assert.Contains(t, logs, "picked seed")
}

func TestConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 40\nheight = 20\n"), 0o644))

	out, _, err := run(t, "generate", "--config", path, "--height=30", "--seed=2")
	require.NoError(t, err)
	// 4 columns from the file, 3 rows from the flag.
	lines := strings.Split(out, "\n")
	assert.Equal(t, "+---+---+---+---+", lines[0])
	assert.Equal(t, "+---+---+---+---+", lines[6])
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := run(t, "generate", "--cell-size=0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "generate", "--scheme=plasma")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRenderWritesPNGAndFrames(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out", "maze.png")
	frames := filepath.Join(dir, "frames")

	out, _, err := run(t, "render", "--width=40", "--height=30", "--seed=3",
		"--edges-per-step=4", "-o", outPath, "--frames", frames)
	require.NoError(t, err)
	assert.Contains(t, out, "rendered 11 edges")
	assert.FileExists(t, outPath)

	entries, err := os.ReadDir(frames)
	require.NoError(t, err)
	// 11 edges in batches of 4.
	assert.Len(t, entries, 3)
	assert.Equal(t, "frame_00000.png", entries[0].Name())
}

func TestSweep(t *testing.T) {
	out, _, err := run(t, "sweep", "--width=50", "--height=50", "--seeds=6", "--workers=3")
	require.NoError(t, err)
	assert.Contains(t, out, "sweep of 6 seeds")
	assert.Contains(t, out, "150 cells")

	_, _, err = run(t, "sweep", "--seeds=0")
	assert.Error(t, err)
}

func TestSweepSeedsMatchesSequential(t *testing.T) {
	g, err := core.NewGrid(7, 9)
	require.NoError(t, err)
	results, err := sweepSeeds(context.Background(), g, 10, 12, 4)
	require.NoError(t, err)
	require.Len(t, results, 12)
	for i, r := range results {
		seed := int64(10 + i)
		tree, err := maze.BuildSeeded(g, seed)
		require.NoError(t, err)
		assert.Equal(t, seed, r.seed)
		assert.Equal(t, maze.Summarize(tree, g), r.stats)
	}
}

func TestSweepSeedsCancelled(t *testing.T) {
	g, err := core.NewGrid(3, 3)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sweepSeeds(ctx, g, 1, 5, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

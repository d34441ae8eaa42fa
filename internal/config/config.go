// Package config gathers the run parameters from defaults, an optional TOML
// file, the environment and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"spanmaze/internal/core"
	"spanmaze/internal/palette"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "SPANMAZE_"

// Config represents the parameters of one run.
type Config struct {
	Width    int   `toml:"width"`
	Height   int   `toml:"height"`
	CellSize int   `toml:"cell_size"`
	Seed     int64 `toml:"seed"`

	Scheme     string `toml:"scheme"`
	Buckets    int    `toml:"buckets"`
	Background string `toml:"background"`

	EdgesPerStep   int `toml:"edges_per_step"`
	StepsPerSecond int `toml:"steps_per_second"`
	TPS            int `toml:"tps"`
	Scale          int `toml:"scale"`
}

// NewConfig returns a Config populated with the defaults: an 800×600
// surface of 10px cells revealed with the cyclic gradient.
func NewConfig() *Config {
	return &Config{
		Width:          800,
		Height:         600,
		CellSize:       10,
		Scheme:         "cyclic",
		Buckets:        20,
		Background:     "#000000",
		EdgesPerStep:   4,
		StepsPerSecond: 60,
		TPS:            60,
		Scale:          1,
	}
}

// LoadFile overlays values from a TOML file. Keys absent from the file keep
// their current value.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return nil
}

// LoadEnv overlays SPANMAZE_* variables. A .env file in the working
// directory is read first when present; variables already set in the
// process environment win over it.
func (c *Config) LoadEnv(dotenv ...string) error {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: load .env: %w", err)
	}
	ints := map[string]*int{
		"WIDTH":            &c.Width,
		"HEIGHT":           &c.Height,
		"CELL_SIZE":        &c.CellSize,
		"BUCKETS":          &c.Buckets,
		"EDGES_PER_STEP":   &c.EdgesPerStep,
		"STEPS_PER_SECOND": &c.StepsPerSecond,
		"TPS":              &c.TPS,
		"SCALE":            &c.Scale,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalidConfig, EnvPrefix, key, err)
		}
		*dst = parsed
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED must be an integer: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Seed = parsed
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SCHEME"); ok {
		c.Scheme = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "BACKGROUND"); ok {
		c.Background = v
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "surface height in pixels")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "shuffle seed (0 picks one and logs it)")
	fs.StringVar(&c.Scheme, "scheme", c.Scheme, "edge colouring: "+strings.Join(palette.Names(), ", "))
	fs.IntVar(&c.Buckets, "buckets", c.Buckets, "segment count for the segmented scheme")
	fs.StringVar(&c.Background, "background", c.Background, "background colour as #rrggbb")
	fs.IntVar(&c.EdgesPerStep, "edges-per-step", c.EdgesPerStep, "edges revealed per step")
	fs.IntVar(&c.StepsPerSecond, "steps-per-second", c.StepsPerSecond, "reveal steps per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window ticks per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixel scale multiplier")
}

// Resolve rebuilds c from the defaults, the TOML file at path (when not
// empty) and the environment, then re-applies every flag the user set on fs
// so that explicit flags take precedence. fs must already be parsed and
// bound to c.
func (c *Config) Resolve(fs *pflag.FlagSet, path string, dotenv ...string) error {
	changed := map[string]string{}
	fs.Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })

	*c = *NewConfig()
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return err
		}
	}
	if err := c.LoadEnv(dotenv...); err != nil {
		return err
	}
	for name, v := range changed {
		if err := fs.Set(name, v); err != nil {
			return fmt.Errorf("%w: --%s: %v", ErrInvalidConfig, name, err)
		}
	}
	return c.Validate()
}

// Validate reports the first field that cannot produce a run.
func (c *Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	case c.Width < c.CellSize || c.Height < c.CellSize:
		return fmt.Errorf("%w: %dx%d surface holds no %dpx cell", ErrInvalidConfig, c.Width, c.Height, c.CellSize)
	case c.Buckets <= 0:
		return fmt.Errorf("%w: buckets must be positive, got %d", ErrInvalidConfig, c.Buckets)
	case c.EdgesPerStep <= 0:
		return fmt.Errorf("%w: edges per step must be positive, got %d", ErrInvalidConfig, c.EdgesPerStep)
	case c.StepsPerSecond <= 0:
		return fmt.Errorf("%w: steps per second must be positive, got %d", ErrInvalidConfig, c.StepsPerSecond)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %d", ErrInvalidConfig, c.Scale)
	}
	if _, ok := palette.Lookup(c.Scheme); !ok {
		return fmt.Errorf("%w: unknown scheme %q (have %s)", ErrInvalidConfig, c.Scheme, strings.Join(palette.Names(), ", "))
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Grid returns the grid that fits the configured surface.
func (c *Config) Grid() (core.Grid, error) {
	return core.GridFromGeometry(c.Width, c.Height, c.CellSize)
}

// Palette returns the configured colour scheme.
func (c *Config) Palette() palette.Scheme {
	if s, ok := palette.Lookup(c.Scheme); ok {
		return s
	}
	return palette.Mono
}

// BackgroundPixel returns the background as a packed 0xAARRGGBB value,
// falling back to opaque black.
func (c *Config) BackgroundPixel() uint32 {
	p, err := ParseHexColor(c.Background)
	if err != nil {
		return 0xff000000
	}
	return p
}

// ParseHexColor parses "#rrggbb" or "rrggbb" into an opaque packed pixel.
func ParseHexColor(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("want #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("want #rrggbb, got %q", s)
	}
	return 0xff000000 | uint32(v), nil
}

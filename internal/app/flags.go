package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"citypulse/internal/config"
	"citypulse/internal/heatfield"
	"citypulse/internal/heatmap"
	"citypulse/pkg/rng"
)

// Config represents the command-line and environment parameters shared by
// the heat map hosts. Precedence is flags, then environment, then defaults.
type Config struct {
	Size       int           `env:"CITYPULSE_SIZE"`
	Hotspots   int           `env:"CITYPULSE_HOTSPOTS"`
	Interval   time.Duration `env:"CITYPULSE_INTERVAL"`
	Seed       int64         `env:"CITYPULSE_SEED"`
	RandomSeed bool          `env:"CITYPULSE_RANDOM_SEED"`
	Dark       bool          `env:"CITYPULSE_DARK"`
	Scale      int           `env:"CITYPULSE_SCALE"`
	TPS        int           `env:"CITYPULSE_TPS"`

	Overrides kvList
}

// NewConfig returns a Config populated with the dashboard defaults.
func NewConfig() *Config {
	def := heatfield.DefaultConfig()
	return &Config{
		Size:     def.Size,
		Hotspots: def.Hotspots,
		Interval: heatmap.DefaultInterval,
		Seed:     def.Seed,
		Dark:     true,
		Scale:    48,
		TPS:      60,
	}
}

// LoadEnv applies CITYPULSE_* environment overrides.
func (c *Config) LoadEnv() error {
	return config.ParseEnv(c)
}

// Bind attaches the configuration to the provided FlagSet. Call it after
// LoadEnv so environment values become the flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid side length")
	fs.IntVar(&c.Hotspots, "hotspots", c.Hotspots, "random hotspots per generation")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "regeneration interval")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random source")
	fs.BoolVar(&c.RandomSeed, "random-seed", c.RandomSeed, "ignore -seed and draw a fresh seed")
	fs.BoolVar(&c.Dark, "dark", c.Dark, "use the dark theme")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Var(&c.Overrides, "set", "generator override in key=value form (repeatable)")
}

// Validate rejects settings that would produce a malformed field or schedule.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size %d: %w", c.Size, heatfield.ErrInvalidSize)
	}
	if c.Hotspots < 0 {
		return fmt.Errorf("hotspots %d: %w", c.Hotspots, heatfield.ErrInvalidHotspots)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval %v: %w", c.Interval, heatmap.ErrInvalidInterval)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.TPS)
	}
	return nil
}

// FieldConfig merges the flag values with any -set overrides.
func (c *Config) FieldConfig() (heatfield.Config, error) {
	seed := c.Seed
	if c.RandomSeed {
		s, err := rng.NewSeed()
		if err != nil {
			return heatfield.Config{}, err
		}
		seed = s
	}
	m := map[string]string{
		"size":     strconv.Itoa(c.Size),
		"hotspots": strconv.Itoa(c.Hotspots),
		"seed":     strconv.FormatInt(seed, 10),
	}
	for _, kv := range c.Overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return heatfield.Config{}, fmt.Errorf("override %q: expected key=value", kv)
		}
		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return heatfield.FromMap(m), nil
}

// NewGenerator builds the heat field generator described by c.
func (c *Config) NewGenerator() (*heatfield.Generator, error) {
	fc, err := c.FieldConfig()
	if err != nil {
		return nil, err
	}
	return heatfield.NewGenerator(fc, rng.NewRNG(fc.Seed))
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

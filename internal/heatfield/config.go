package heatfield

import "strconv"

// Config controls the generated field dimensions and hotspot count.
type Config struct {
	Size     int
	Hotspots int

	Seed int64
}

// DefaultConfig returns the standard 10x10 field with two hotspots.
func DefaultConfig() Config {
	return Config{
		Size:     10,
		Hotspots: 2,
		Seed:     1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["hotspots"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Hotspots = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"meadowland/internal/mapgen"
)

type kvList []string

func (l *kvList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not in key=value form", value)
	}
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Catalog  string
	Textures string
	Scale    int
	TPS      int
	LogLevel string

	values    map[string]string
	overrides kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 3, TPS: 60, LogLevel: "info", values: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	def := mapgen.DefaultConfig()
	fs.StringVar(&c.Catalog, "catalog", c.Catalog, "biome catalog JSON (empty uses the embedded catalog)")
	fs.StringVar(&c.Textures, "textures", c.Textures, "texture atlas JSON (empty uses the embedded atlas)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	c.value(fs, "w", "world width in cells", fmt.Sprint(def.Width))
	c.value(fs, "h", "world height in cells", fmt.Sprint(def.Height))
	c.value(fs, "seed", "seed for the run (0 draws a fresh one)", "0")
	c.value(fs, "workers", "goroutines sampling rows", fmt.Sprint(def.Workers))
	c.value(fs, "fallback", "biome for unmatched cells (empty rejects the map)", def.FallbackBiome)
	fs.Var(&c.overrides, "set", "parameter override in key=value form, e.g. height.1.frequency=0.2 (repeatable)")
}

func (c *Config) value(fs *flag.FlagSet, key, usage, def string) {
	fs.Func(key, fmt.Sprintf("%s (default %q)", usage, def), func(v string) error {
		c.values[key] = v
		return nil
	})
}

// Map returns the generation settings. Named flags win over -set overrides of
// the same key.
func (c *Config) Map() mapgen.Config {
	merged := make(map[string]string, len(c.values)+len(c.overrides))
	for _, kv := range c.overrides {
		key, value, _ := strings.Cut(kv, "=")
		merged[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	for k, v := range c.values {
		merged[k] = v
	}
	return mapgen.FromMap(merged)
}

// NewLogger builds the text logger used by the commands.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

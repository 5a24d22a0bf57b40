package tableblock

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config is the on-disk configuration file layout.
type Config struct {
	Table TableConfig `toml:"table"`
	Log   LogConfig   `toml:"log"`
}

// TableConfig holds decoration defaults.
type TableConfig struct {
	Format    string `toml:"format"`
	NoHeader  bool   `toml:"no_header"`
	Pretty    bool   `toml:"pretty"`
	Sheet     string `toml:"sheet"`
	PrintArea *bool  `toml:"print_area"`
}

// LogConfig holds logging defaults.
type LogConfig struct {
	Level string `toml:"level"`
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Options converts the table section into decoration options.
func (c *Config) Options() (Options, error) {
	opts := DefaultOptions()
	if c.Table.Format != "" {
		f, err := ParseFormat(c.Table.Format)
		if err != nil {
			return opts, err
		}
		opts.Format = f
	}
	opts.NoHeader = c.Table.NoHeader
	opts.Sheet = c.Table.Sheet
	opts.UsePrintArea = c.Table.PrintArea
	return opts, nil
}

// LogLevel returns the configured log level, or fallback if none is set.
func (c *Config) LogLevel(fallback log.Level) (log.Level, error) {
	if c.Log.Level == "" {
		return fallback, nil
	}
	return log.ParseLevel(c.Log.Level)
}

// Package config loads per-compilation-unit configuration from YAML,
// mirroring how a real driver would configure a single unit before handing
// its source to the lexer: a source name for diagnostics, and the handful
// of feature toggles the lexer currently exposes as functional options.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/rhea-lang/rhea/internal/lexer"
)

// Config is a single compilation unit's settings, as loaded from a YAML
// unit-config file. Zero value is the lexer's own zero-value behavior:
// unnamed source, comments discarded.
type Config struct {
	SourceName       string          `yaml:"source_name"`
	PreserveComments bool            `yaml:"preserve_comments"`
	Features         map[string]bool `yaml:"features"`
}

// Load reads and decodes the unit config at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a unit config from r. A config file containing only a
// subset of the known keys leaves the rest at their zero value.
func Decode(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// FeatureEnabled reports whether name is set to true under features. An
// absent key is disabled, not an error.
func (c *Config) FeatureEnabled(name string) bool {
	if c == nil {
		return false
	}
	return c.Features[name]
}

// LexerOptions translates c into the lexer.Option values a driver passes
// to lexer.New for this unit.
func (c *Config) LexerOptions() []lexer.Option {
	if c == nil {
		return nil
	}
	opts := make([]lexer.Option, 0, 2)
	if c.SourceName != "" {
		opts = append(opts, lexer.WithSourceName(c.SourceName))
	}
	opts = append(opts, lexer.WithPreserveComments(c.PreserveComments))
	return opts
}

package normdiff

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/normdiff/lcs"
	"github.com/viant/normdiff/unified"
	"gopkg.in/yaml.v3"
)

// Format selects the output format.
type Format string

const (
	// FormatNormal is the classical "2d1" / "3a3" format.
	FormatNormal Format = "normal"
	// FormatUnified is the "@@ -1,3 +1,3 @@" format.
	FormatUnified Format = "unified"
)

// Config is a serialisable representation of the service configuration. It
// can be populated from YAML or JSON; unset fields keep DefaultConfig values
// when loaded with LoadConfig.
type Config struct {
	Engine  EngineConfig  `json:"engine" yaml:"engine"`
	Output  OutputConfig  `json:"output" yaml:"output"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

type EngineConfig struct {
	MaxCells int `json:"maxCells" yaml:"maxCells"`
}

type OutputConfig struct {
	Format  Format `json:"format" yaml:"format"`
	Color   bool   `json:"color" yaml:"color"`
	Context int    `json:"context" yaml:"context"`
}

type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
	Output         string `json:"output" yaml:"output"` // span file; empty writes to stderr
}

// DefaultConfig returns a Config populated with the package defaults. Callers
// may modify the returned struct before passing it to WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			MaxCells: lcs.DefaultMaxCells,
		},
		Output: OutputConfig{
			Format:  FormatNormal,
			Context: unified.DefaultContext,
		},
		Tracing: TracingConfig{
			ServiceName:    "normdiff",
			ServiceVersion: Version,
		},
	}
}

// Validate returns an error describing the first invalid setting, or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Engine.MaxCells <= 0 {
		return fmt.Errorf("engine.maxCells must be > 0")
	}
	switch c.Output.Format {
	case FormatNormal, FormatUnified:
	default:
		return fmt.Errorf("output.format %q is not one of %q, %q", c.Output.Format, FormatNormal, FormatUnified)
	}
	if c.Output.Context < 0 {
		return fmt.Errorf("output.context must be >= 0")
	}
	return nil
}

// LoadConfig reads a YAML config from URL on top of DefaultConfig.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config from %s: %w", URL, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the tenpin CLI configuration
type Config struct {
	CLI CLISettings `hcl:"cli,block"`
}

// CLISettings contains command-line tool settings
type CLISettings struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
	Workers   int    `hcl:"workers,optional"`
	NoColor   bool   `hcl:"no_color,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		CLI: CLISettings{
			LogLevel:  "info",
			LogFormat: "text",
			Workers:   4,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.CLI.LogLevel == "" {
		config.CLI.LogLevel = "info"
	}
	if config.CLI.LogFormat == "" {
		config.CLI.LogFormat = "text"
	}
	if config.CLI.Workers == 0 {
		config.CLI.Workers = 4
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.CLI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.CLI.LogLevel)
	}

	switch c.CLI.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log format: %s", c.CLI.LogFormat)
	}

	if c.CLI.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.CLI.Workers)
	}
	return nil
}

// Level returns the configured log level, falling back to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.CLI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Formatter returns the log formatter for the configured format
func (c *Config) Formatter() log.Formatter {
	switch c.CLI.LogFormat {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
